package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"negachess/bots"
	"negachess/config"
	"negachess/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/notnil/chess"
)

const (
	squareSize   = 72
	boardOffsetX = 16
	boardOffsetY = 48
	screenWidth  = squareSize*8 + boardOffsetX*2
	screenHeight = squareSize*8 + boardOffsetY + 40
)

var (
	lightSquare  = color.RGBA{240, 217, 181, 255}
	darkSquare   = color.RGBA{181, 136, 99, 255}
	lastMoveTint = color.RGBA{205, 210, 106, 160}
	whitePiece   = color.RGBA{250, 250, 250, 255}
	blackPiece   = color.RGBA{30, 30, 30, 255}
)

var pieceLetters = map[chess.PieceType]string{
	chess.King:   "K",
	chess.Queen:  "Q",
	chess.Rook:   "R",
	chess.Bishop: "B",
	chess.Knight: "N",
	chess.Pawn:   "P",
}

// Game draws the board and forwards drag-and-drop to the controller.
type Game struct {
	ctrl         *game.Controller
	sched        *game.TickScheduler
	selected     chess.Square
	dragging     *chess.Piece
	dragX, dragY int
	glyphs       map[chess.PieceType]*ebiten.Image
	botOpts      bots.Options
	botName      string
}

func NewGame(ctrl *game.Controller, sched *game.TickScheduler, botName string, botOpts bots.Options) *Game {
	g := &Game{
		ctrl:     ctrl,
		sched:    sched,
		selected: chess.NoSquare,
		glyphs:   make(map[chess.PieceType]*ebiten.Image),
		botOpts:  botOpts,
		botName:  botName,
	}
	return g
}

// nextBot switches the opponent to the next bot in bots.Names.
func (g *Game) nextBot() {
	g.botName = bots.Next(g.botName)
	bot, err := bots.New(g.botName, g.botOpts)
	if err != nil {
		log.Printf("switch bot: %v", err)
		return
	}
	g.ctrl.SetBot(bot)
	ebiten.SetWindowTitle("Chess vs " + bot.Name())
}

func (g *Game) Update() error {
	// The computer's turn runs here, on the game loop, once its delay is up.
	g.sched.Tick(time.Second / time.Duration(ebiten.TPS()))

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
		g.dragging = nil
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.nextBot()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if sq, ok := squareAt(x, y); ok && g.ctrl.CanDrag(sq.String()) {
			piece := g.ctrl.Position().Board().Piece(sq)
			g.selected = sq
			g.dragging = &piece
		}
	}

	if g.dragging != nil {
		g.dragX, g.dragY = ebiten.CursorPosition()
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging != nil {
		x, y := ebiten.CursorPosition()
		if target, ok := squareAt(x, y); ok && target != g.selected {
			if err := g.ctrl.Drop(g.selected.String(), target.String()); err != nil {
				log.Printf("drop %s-%s rejected: %v", g.selected, target, err)
			}
		}
		// Rejected drops snap back because the board is redrawn from the game.
		g.selected = chess.NoSquare
		g.dragging = nil
	}
	return nil
}

func squareAt(x, y int) (chess.Square, bool) {
	x -= boardOffsetX
	y -= boardOffsetY
	if x < 0 || x >= squareSize*8 || y < 0 || y >= squareSize*8 {
		return chess.NoSquare, false
	}
	file := x / squareSize
	rank := 7 - y/squareSize
	return chess.NewSquare(chess.File(file), chess.Rank(rank)), true
}

func (g *Game) Draw(screen *ebiten.Image) {
	st := g.ctrl.State()
	pos := g.ctrl.Position()

	var from, to string
	if len(st.LastMove) >= 4 {
		from, to = st.LastMove[:2], st.LastMove[2:4]
	}

	board := pos.Board()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sq := chess.NewSquare(chess.File(x), chess.Rank(7-y))
			px := float32(x*squareSize + boardOffsetX)
			py := float32(y*squareSize + boardOffsetY)

			clr := lightSquare
			if (x+y)%2 == 1 {
				clr = darkSquare
			}
			vector.DrawFilledRect(screen, px, py, squareSize, squareSize, clr, false)
			if name := sq.String(); name == from || name == to {
				vector.DrawFilledRect(screen, px, py, squareSize, squareSize, lastMoveTint, false)
			}

			piece := board.Piece(sq)
			if piece != chess.NoPiece && (g.dragging == nil || sq != g.selected) {
				g.drawPiece(screen, piece, px+squareSize/2, py+squareSize/2)
			}
		}
	}

	if g.dragging != nil {
		g.drawPiece(screen, *g.dragging, float32(g.dragX), float32(g.dragY))
	}

	ebitenutil.DebugPrintAt(screen, st.Status, boardOffsetX, 16)
	footer := fmt.Sprintf("%s  |  R: new game  B: next bot", st.Bot)
	if n := len(st.History); n > 0 {
		footer = fmt.Sprintf("%s  |  %s", footer, strings.Join(tail(st.History, 6), " "))
	}
	ebitenutil.DebugPrintAt(screen, footer, boardOffsetX, boardOffsetY+squareSize*8+12)
}

func (g *Game) drawPiece(screen *ebiten.Image, piece chess.Piece, cx, cy float32) {
	fill, ink := whitePiece, blackPiece
	if piece.Color() == chess.Black {
		fill, ink = blackPiece, whitePiece
	}
	vector.DrawFilledCircle(screen, cx, cy, squareSize*0.38, fill, true)
	vector.StrokeCircle(screen, cx, cy, squareSize*0.38, 2, ink, true)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(cx)-6, float64(cy)-16)
	op.ColorScale.ScaleWithColor(ink)
	screen.DrawImage(g.glyph(piece.Type()), op)
}

// glyph renders the piece letter once. Debug text is white, so it can be
// tinted to either ink colour.
func (g *Game) glyph(pt chess.PieceType) *ebiten.Image {
	if img, ok := g.glyphs[pt]; ok {
		return img
	}
	// DebugPrint glyphs are 6x16.
	img := ebiten.NewImage(6, 16)
	ebitenutil.DebugPrint(img, pieceLetters[pt])
	g.glyphs[pt] = img
	return img
}

func tail(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	botOpts := bots.Options{
		Depth:   cfg.Engine.Depth,
		Seed:    cfg.Engine.Seed,
		Verbose: cfg.Logs.Search,
	}
	bot, err := bots.New(cfg.Engine.Bot, botOpts)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	sched := game.NewTickScheduler()
	ctrl := game.NewController(game.Options{
		Bot:        bot,
		Scheduler:  sched,
		ReplyDelay: cfg.Game.ReplyDelay,
		ThinkDelay: cfg.Game.ThinkDelay,
	})

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Chess vs " + bot.Name())
	if err := ebiten.RunGame(NewGame(ctrl, sched, cfg.Engine.Bot, botOpts)); err != nil {
		log.Fatal(err)
	}
}
