package platform

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// PauseActions are the session controls the pause panel offers.
type PauseActions interface {
	SetPaused(v bool)
	Restart() error
	OpenMenu()
	Quit()
}

// PauseMenu is the overlay shown while a session is paused.
type PauseMenu struct {
	ui      *ebitenui.UI
	actions PauseActions
	err     error
}

// NewPauseMenu builds a centered panel sized to half the logical screen.
// Buttons use colored nine-slices and the built-in basic font, so no theme
// assets are needed.
func NewPauseMenu(actions PauseActions, w, h int) *PauseMenu {
	m := &PauseMenu{actions: actions}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w/2, h/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(button("Resume", m.Resume))
	panel.AddChild(button("Restart", m.restart))
	panel.AddChild(button("Main menu", m.mainMenu))
	panel.AddChild(button("Quit", actions.Quit))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	m.ui = &ebitenui.UI{Container: root}
	return m
}

func (m *PauseMenu) Resume() {
	m.actions.SetPaused(false)
}

func (m *PauseMenu) restart() {
	m.err = m.actions.Restart()
}

func (m *PauseMenu) mainMenu() {
	m.actions.OpenMenu()
}

// Update runs the widget tree. It returns the error of a failed restart.
func (m *PauseMenu) Update() error {
	m.ui.Update()
	err := m.err
	m.err = nil
	return err
}

func (m *PauseMenu) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}
