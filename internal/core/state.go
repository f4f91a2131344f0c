package core

// RunState summarises the progress of a run for the platform layer.
type RunState struct {
	Level     string   // Name of the active level
	Health    float64  // Player health
	MaxHealth float64  // Player health ceiling
	Kills     int      // Enemies killed this run
	Elapsed   float64  // Simulated seconds since the run began
	Selected  string   // Name of the selected inventory item
	Ammo      float64  // Ammunition of the selected gun, -1 when not a gun
	Items     []string // Inventory contents in slot order
	Prompt    bool     // Whether a keypad code is being asked for
	GameOver  bool     // Whether the player has died
}
