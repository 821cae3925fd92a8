package constants

// File Names
const (
	ConfigFileName   = "tkapp.conf"
	SettingsFileName = "tkapp.toml"
	LogFileName      = "tkapp.log"
)

// Launcher Defaults
const (
	DefaultTitle       = "TkApp"
	DefaultIcon        = "icon.png"
	DefaultTerminal    = "x-terminal-emulator"
	DefaultInterpreter = "python"
	DefaultEntryName   = "Unnamed App"
	DefaultAbout       = "TkApp Launcher\n\nA simple application launcher."
)

// Entry Types
const (
	TypePython = "python"
	TypeBash   = "bash"
)

// About Tab
const (
	AboutTabName = "About"
	ProjectURL   = "https://github.com/devfilipe/tkapp"
)
