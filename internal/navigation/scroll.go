package navigation

// Scroller moves the viewport.
type Scroller interface {
	ScrollTo(y float64, smooth bool)
}

// ScrollSource delivers the viewport offset on every scroll event. The returned
// func detaches the listener.
type ScrollSource interface {
	OnScroll(fn func(y float64)) (detach func())
}
