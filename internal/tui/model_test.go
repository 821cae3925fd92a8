package tui

import (
	"context"
	"errors"
	"testing"

	"tkapp/internal/config"
	"tkapp/internal/constants"
	"tkapp/internal/launch"
)

func testConfig() config.LauncherConfig {
	cfg := config.Default()
	cfg.Categories = []config.Category{
		{Name: "Tools", Entries: []config.Entry{
			{Name: "editor", Enabled: true, Path: "edit.py"},
			{Name: "hidden", Enabled: false, Path: "hidden.py"},
		}},
		{Name: "Games", Entries: []config.Entry{
			{Name: "chess", Enabled: true, Path: "chess.py"},
		}},
	}
	return cfg
}

func newTestModel(cfg config.LauncherConfig, startupErr error) Model {
	settings := config.DefaultSettings()
	return NewModel(context.Background(), cfg, settings, launch.New(cfg, settings), startupErr)
}

func TestTabsFollowDocumentOrder(t *testing.T) {
	m := newTestModel(testConfig(), nil)

	if len(m.tabs) != 3 {
		t.Fatalf("Expected 3 tabs (2 categories + About), got %d", len(m.tabs))
	}
	if m.tabs[0].Name != "Tools" || m.tabs[1].Name != "Games" {
		t.Errorf("Tab order must follow the document: got %q, %q", m.tabs[0].Name, m.tabs[1].Name)
	}
	last := m.tabs[len(m.tabs)-1]
	if last.Name != constants.AboutTabName || !last.About {
		t.Error("The About tab must always be present, last")
	}
}

func TestAboutTabWithoutCategories(t *testing.T) {
	m := newTestModel(config.Default(), nil)

	if len(m.tabs) != 1 {
		t.Fatalf("Expected only the About tab, got %d tabs", len(m.tabs))
	}
	if !m.tabs[0].About {
		t.Error("The only tab must be the About view")
	}
}

func TestDisabledEntriesNotRendered(t *testing.T) {
	m := newTestModel(testConfig(), nil)

	for _, entry := range m.tabs[0].Entries {
		if entry.Name == "hidden" {
			t.Error("Disabled entries must never appear as launchable targets")
		}
	}
	if len(m.tabs[0].Entries) != 1 {
		t.Errorf("Expected 1 enabled entry in Tools, got %d", len(m.tabs[0].Entries))
	}
}

func TestStartupErrorOpensDialog(t *testing.T) {
	m := newTestModel(config.Default(), errors.New("read configuration file: no such file"))

	if m.dialog == nil {
		t.Fatal("A configuration-load failure must be shown as a dialog")
	}
	if m.dialog.messageType != MessageError {
		t.Error("The startup dialog must be an error dialog")
	}
}

func TestLaunchFailureOpensDialogAndKeepsRunning(t *testing.T) {
	m := newTestModel(testConfig(), nil)

	entry := m.tabs[0].Entries[0]
	updated, _ := m.Update(launchResultMsg{Entry: entry, Err: errors.New("spawn failed")})
	m = updated.(Model)

	if m.dialog == nil {
		t.Fatal("A launch failure must open an error dialog")
	}

	// The model keeps processing messages after the failure
	updated, _ = m.Update(launchResultMsg{Entry: entry, Err: nil})
	m = updated.(Model)
	if len(m.tabs) != 3 {
		t.Error("Model state must survive a launch failure")
	}
}

func TestLaunchSuccessLeavesNoDialog(t *testing.T) {
	m := newTestModel(testConfig(), nil)

	updated, _ := m.Update(launchResultMsg{Entry: m.tabs[0].Entries[0]})
	m = updated.(Model)

	if m.dialog != nil {
		t.Error("A successful launch must not open a dialog")
	}
}

func TestSelectTabWraps(t *testing.T) {
	m := newTestModel(testConfig(), nil)

	m.selectTab(-1)
	if m.active != len(m.tabs)-1 {
		t.Errorf("Expected wrap to last tab, got %d", m.active)
	}
	m.selectTab(len(m.tabs))
	if m.active != 0 {
		t.Errorf("Expected wrap to first tab, got %d", m.active)
	}
}

func TestOpenLinkUsesProjectURL(t *testing.T) {
	m := newTestModel(config.Default(), nil)

	var opened string
	m.opener = func(url string) error {
		opened = url
		return nil
	}

	msg := m.openLinkCmd()()
	if opened != constants.ProjectURL {
		t.Errorf("Expected the attribution URL to be opened, got %q", opened)
	}
	result, ok := msg.(openLinkResultMsg)
	if !ok {
		t.Fatalf("Expected openLinkResultMsg, got %T", msg)
	}
	if result.Err != nil {
		t.Errorf("Unexpected error: %v", result.Err)
	}
}
