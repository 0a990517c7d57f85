package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the overlay shown once a match has ended.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRestart func()

	resultLabel *widget.Label
	recordLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

func NewGameOverUI(onRestart func()) *GameOverUI {
	ui := &GameOverUI{
		OnRestart: onRestart,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *GameOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	ui.resultLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.titleFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	)
	contentContainer.AddChild(ui.resultLabel)

	ui.recordLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(ui.recordLabel)

	restartBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Restart", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnRestart != nil {
				ui.OnRestart()
			}
		}),
	)
	contentContainer.AddChild(restartBtn)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// SetResult updates the labels for a finished match.
func (ui *GameOverUI) SetResult(winner cfg.Winner, record components.RecordData) {
	ui.resultLabel.Label = ResultText(winner)
	ui.recordLabel.Label = fmt.Sprintf("Wins %d   Losses %d   Draws %d   (R to restart)", record.Wins, record.Losses, record.Draws)
}

// ResultText is the headline shown for an outcome.
func ResultText(winner cfg.Winner) string {
	switch winner {
	case cfg.WinnerPlayer:
		return "YOU WIN"
	case cfg.WinnerEnemy:
		return "YOU LOSE"
	case cfg.WinnerDraw:
		return "DRAW"
	default:
		return "MATCH OVER"
	}
}

func (ui *GameOverUI) Update() {
	ui.UI.Update()
}

func (ui *GameOverUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
