package common

const (
	// SpriteSize is the edge length of one tile and of one sprite cell.
	SpriteSize = 32

	ScreenWidth  = 640
	ScreenHeight = 360
)
