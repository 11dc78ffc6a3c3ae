package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything the panel can stack vertically
type Widget interface {
	HandlePointer(mx, my int, pressed bool)
	Draw(screen *ebiten.Image)
	Height() float64
	SetY(y float64)
}

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
)

// PanelSection groups the widgets between two AddSection calls
type PanelSection struct {
	Title      string
	StartIndex int // first widget of the section
	EndIndex   int // one past the last widget
}

// Panel is a scrollable column of sections holding checkboxes and buttons
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Widgets       []Widget
	ScrollOffset  float64

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// NewPanel creates a new UI panel
func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection opens a new section; widgets added afterwards belong to it
func (p *Panel) AddSection(title string) {
	p.EndSection()
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *Panel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// AddCheckbox adds a checkbox to the current section
func (p *Panel) AddCheckbox(label string, value bool, onChange func(bool)) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	c.OnChange = onChange
	p.add(c)
	return c
}

// AddButton adds a full width button to the current section
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 24, label, onClick)
	p.add(b)
	return b
}

func (p *Panel) add(w Widget) {
	if len(p.sections) == 0 {
		p.AddSection("")
	}
	p.Widgets = append(p.Widgets, w)
	p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	p.layout()
}

// layout places every widget according to its section and the scroll offset
func (p *Panel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	for _, s := range p.sections {
		y += sectionHeight
		for i := s.StartIndex; i < s.EndIndex && i < len(p.Widgets); i++ {
			p.Widgets[i].SetY(y)
			y += p.Widgets[i].Height()
		}
	}
}

// ContentHeight is the total height of title, headers and widgets
func (p *Panel) ContentHeight() float64 {
	h := titleHeight + float64(len(p.sections))*sectionHeight
	for _, w := range p.Widgets {
		h += w.Height()
	}
	return h
}

// Contains reports whether a screen point is over the panel
func (p *Panel) Contains(mx, my int) bool {
	return float64(mx) >= p.X && float64(mx) <= p.X+p.Width &&
		float64(my) >= p.Y && float64(my) <= p.Y+p.Height
}

// Update handles scrolling and forwards the pointer to every widget
func (p *Panel) Update() {
	mx, my := ebiten.CursorPosition()
	_, dy := ebiten.Wheel()
	p.Scroll(dy)
	p.HandlePointer(mx, my, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Scroll moves the content by wheel ticks, clamped to the content height
func (p *Panel) Scroll(dy float64) {
	if dy == 0 {
		return
	}
	p.ScrollOffset -= dy * 20

	maxScroll := p.ContentHeight() - p.Height + 10
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.ScrollOffset > maxScroll {
		p.ScrollOffset = maxScroll
	}
	if p.ScrollOffset < 0 {
		p.ScrollOffset = 0
	}
	p.layout()
}

// HandlePointer forwards pointer state to the widgets
func (p *Panel) HandlePointer(mx, my int, pressed bool) {
	for _, w := range p.Widgets {
		w.HandlePointer(mx, my, pressed)
	}
}

// Draw renders the panel and all widgets that are inside it
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	y := p.Y + titleHeight - p.ScrollOffset
	for _, s := range p.sections {
		if p.visible(y, sectionHeight) && s.Title != "" {
			vector.FillRect(screen,
				float32(p.X+5), float32(y),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, s.Title, int(p.X+10), int(y+2))
		}
		y += sectionHeight
		for i := s.StartIndex; i < s.EndIndex && i < len(p.Widgets); i++ {
			w := p.Widgets[i]
			if p.visible(y, w.Height()) {
				w.Draw(screen)
			}
			y += w.Height()
		}
	}
}

func (p *Panel) visible(y, h float64) bool {
	return y >= p.Y+titleHeight && y+h <= p.Y+p.Height
}
