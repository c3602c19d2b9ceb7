package crossing

// Heart is one remaining-life indicator. It has no behavior.
type Heart struct {
	X float64
	Y float64
}

const (
	heartSpacing = 40
	heartOffsetX = 6
	heartY       = 40
	heartWidth   = 40
	heartHeight  = 68
)

// NewHeart returns the indicator for life slot i.
func NewHeart(i int) Heart {
	return Heart{X: float64(i)*heartSpacing + heartOffsetX, Y: heartY}
}

// Hearts builds one indicator per life.
func Hearts(n int) []Heart {
	hs := make([]Heart, 0, n)
	for i := 0; i < n; i++ {
		hs = append(hs, NewHeart(i))
	}
	return hs
}

// Render draws the heart.
func (h Heart) Render(dst Sink) {
	dst.DrawSprite(SpriteHeart, h.X, h.Y, heartWidth, heartHeight)
}
