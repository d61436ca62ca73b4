package input

// Command discriminates application-level actions parsed from terminal
// input. Driving state flows through the latch handler instead; commands
// are handled by the main loop
type Command uint8

const (
	CommandNone Command = iota

	// System-level commands
	CommandQuit   // Ctrl+C anywhere, q on the menu
	CommandResize // Terminal resize event

	// Screen flow
	CommandStart       // Enter on the menu or an end screen
	CommandPauseToggle // Esc or p while driving or paused
	CommandMenu        // q while driving, paused, or on an end screen

	// Settings
	CommandToggleMute      // m
	CommandCycleDifficulty // d on the menu
	CommandCyclePopulation // c on the menu
	CommandToggleGodMode   // g on the menu
)

// Screen selects the handler's parsing context
// Set by the main loop when the game phase changes
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenDrive
	ScreenPause
	ScreenEnd
)
