package crossing

// Sprite names an image the frontend knows how to draw.
type Sprite string

// Sprites used by the game.
const (
	SpritePlayer     Sprite = "char-boy"
	SpriteDefeated   Sprite = "rock"
	SpriteEnemy      Sprite = "enemy-bug"
	SpriteHeart      Sprite = "heart"
	SpriteGemBlue    Sprite = "gem-blue"
	SpriteGemGreen   Sprite = "gem-green"
	SpriteGemOrange  Sprite = "gem-orange"
	SpriteGemUnknown Sprite = "gem"
)

// HUDField identifies a numeric value shown outside the board.
type HUDField int

const (
	HUDScore HUDField = iota
	HUDLives
	HUDHighScore
)

// Sink receives draw calls once per entity per frame.
// Width and height of 0 mean the sprite's natural size.
type Sink interface {
	DrawSprite(s Sprite, x, y, w, h float64)
	SetText(field HUDField, value int)
}
