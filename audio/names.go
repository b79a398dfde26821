package audio

// Effect names. The platform backend maps them to files under sfx/.
const (
	Damage     = "damage"
	CoinDown   = "coin_down"
	CoinUp     = "coin_up"
	Jump       = "jump"
	Walk       = "walk"
	Spray      = "spray"
	Checkpoint = "flag_put"
	GameOver   = "game_over"
	Select     = "select"
)
