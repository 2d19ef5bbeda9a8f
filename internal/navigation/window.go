package navigation

// Window is the host surface the switcher drives on every navigation
type Window interface {
	SetTitle(title string)
	ScrollTo(x, y int)
}

// Viewport is an in-memory Window: the title and scroll offset the next
// render of a visitor's document should carry
type Viewport struct {
	Title string
	X, Y  int
}

// SetTitle implements Window
func (v *Viewport) SetTitle(title string) {
	v.Title = title
}

// ScrollTo implements Window
func (v *Viewport) ScrollTo(x, y int) {
	v.X, v.Y = x, y
}

// AtTop reports whether the viewport is scrolled to the origin
func (v *Viewport) AtTop() bool {
	return v.X == 0 && v.Y == 0
}
