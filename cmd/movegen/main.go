package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	nchess "github.com/corentings/chess/v2"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"

	"github.com/cricklet/movehighlight/internal/board"
	"github.com/cricklet/movehighlight/internal/config"
	. "github.com/cricklet/movehighlight/internal/helpers"
	. "github.com/cricklet/movehighlight/internal/movegen"
	"github.com/cricklet/movehighlight/internal/threats"
)

const usage = `usage:
  movegen moves <fen> <square> [color=white|black]
  movegen threats <fen> <friendly|enemy> [color=white|black]
  movegen sweep <file|-> [color=white|black]
  append "profile" to write a cpu profile`

type options struct {
	friendly nchess.Color
	workers  int
	terminal int
	logger   Logger
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
			os.Exit(1)
		}
	}()

	args := os.Args[1:]

	if Contains(args, "profile") {
		profilePath := RootDir() + "/data/CmdMovegenMain"
		p := profile.Start(profile.ProfilePath(profilePath))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	cfg, err := config.Load(os.Getenv("MOVEHIGHLIGHT_CONFIG"))
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	logger, err := InitLogging(cfg.Log.Level, cfg.Log.Format)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	err = run(args, cfg, logger, os.Stdin, os.Stdout, os.Stderr, int(os.Stdout.Fd()))
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, cfg config.Config, logger Logger, in io.Reader, out io.Writer, errOut io.Writer, terminal int) Error {
	color := cfg.FriendlyColor
	args = FilterSlice(args, func(arg string) bool {
		if strings.HasPrefix(arg, "color=") {
			color = strings.TrimPrefix(arg, "color=")
			return false
		}
		return true
	})

	friendly, err := board.ColorFromString(color)
	if !IsNil(err) {
		return err
	}
	opts := options{
		friendly: friendly,
		workers:  cfg.ThreatWorkers,
		terminal: terminal,
		logger:   logger,
	}

	if len(args) == 0 {
		return Errorf("missing command\n%v", usage)
	}

	switch args[0] {
	case "moves":
		if len(args) != 3 {
			return Errorf("moves takes <fen> <square>\n%v", usage)
		}
		return moves(opts, args[1], args[2], out)
	case "threats":
		if len(args) != 3 {
			return Errorf("threats takes <fen> <side>\n%v", usage)
		}
		return threatMap(opts, args[1], args[2], out)
	case "sweep":
		if len(args) != 2 {
			return Errorf("sweep takes <file>\n%v", usage)
		}
		if args[1] == "-" {
			return sweep(opts, in, out, errOut)
		}
		f, err := WrapReturn(os.Open(args[1]))
		if !IsNil(err) {
			return err
		}
		defer f.Close()
		return sweep(opts, f, out, errOut)
	}
	return Errorf("unknown command %q\n%v", args[0], usage)
}

func moves(opts options, fen string, square string, out io.Writer) Error {
	b, err := board.FromFen(fen, opts.friendly)
	if !IsNil(err) {
		return err
	}
	origin, err := b.ParseSquare(square)
	if !IsNil(err) {
		return err
	}

	piece := b.At(origin)
	if piece.IsEmpty() {
		return Errorf("no piece at %v", square)
	}

	results := b.MovesAt(origin)
	opts.logger.Printf("%v %v at %v: %v moves", piece.Side(), piece.Kind(), square, len(results))

	quiet, captures := Split(results)
	fmt.Fprint(out, board.ForTerminal(b.Unicode(board.MarkersFor(results)), opts.terminal))
	fmt.Fprintln(out, "quiet:", strings.Join(squareNames(b, quiet), " "))
	fmt.Fprintln(out, "captures:", strings.Join(squareNames(b, captures), " "))
	return NilError
}

func threatMap(opts options, fen string, sideArg string, out io.Writer) Error {
	b, err := board.FromFen(fen, opts.friendly)
	if !IsNil(err) {
		return err
	}
	side, ok := SideFromString(sideArg)
	if !ok {
		return Errorf("invalid side %q", sideArg)
	}

	m, err := threats.Compute(context.Background(), b, side, opts.workers)
	if !IsNil(err) {
		return err
	}

	for _, target := range m.Targets() {
		attackers := MapSlice(m.Attackers(target), func(a threats.Attack) string {
			s := a.Kind.String() + "@" + b.SquareName(a.Origin)
			if a.MoveType.Captures() {
				s += "x"
			}
			return s
		})
		fmt.Fprintf(out, "%v: %v\n", b.SquareName(target), strings.Join(attackers, " "))
	}
	fmt.Fprintf(out, "%v tiles, %v captures\n", len(m.Tiles), len(m.Captures()))
	return NilError
}

type sweepStats struct {
	positions int
	invalid   int
	pieces    int
	quiet     int
	captures  int
	most      int
	mostAt    string
}

// sweep reads one FEN per line and generates moves for every piece.
// Blank lines and lines starting with # are skipped.
func sweep(opts options, in io.Reader, out io.Writer, errOut io.Writer) Error {
	lines := []string{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return Wrap(err)
	}

	bar := progressbar.NewOptions(len(lines),
		progressbar.OptionSetWriter(errOut),
		progressbar.OptionSetDescription("sweep"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)

	stats := sweepStats{}
	start := time.Now()
	for i, line := range lines {
		_ = bar.Add(1)

		b, err := board.FromFen(line, opts.friendly)
		if !IsNil(err) {
			stats.invalid++
			opts.logger.Printf("line %v: %v", i+1, err)
			continue
		}
		stats.positions++

		b.EachPiece(func(c Coordinate, p board.Piece) {
			stats.pieces++
			EachMove(func(r MoveResult) {
				if r.MoveType.Captures() {
					stats.captures++
				} else {
					stats.quiet++
				}
			}, p.Kind(), c, p.Side(), b)

			if n := len(b.MovesAt(c)); n > stats.most {
				stats.most = n
				stats.mostAt = fmt.Sprintf("%v@%v in %v", p, b.SquareName(c), b.Fen())
			}
		})
	}
	_ = bar.Finish()
	fmt.Fprintln(errOut)

	fmt.Fprintf(out, "positions: %v (%v invalid)\n", humanize.Comma(int64(stats.positions)), humanize.Comma(int64(stats.invalid)))
	fmt.Fprintf(out, "pieces: %v\n", humanize.Comma(int64(stats.pieces)))
	fmt.Fprintf(out, "quiet: %v\n", humanize.Comma(int64(stats.quiet)))
	fmt.Fprintf(out, "captures: %v\n", humanize.Comma(int64(stats.captures)))
	if stats.most > 0 {
		fmt.Fprintf(out, "most: %v (%v)\n", stats.most, stats.mostAt)
	}
	opts.logger.Printf("swept %v lines in %v", len(lines), time.Since(start).Round(time.Millisecond))
	return NilError
}

func squareNames(b *board.Board, cs []Coordinate) []string {
	return MapSlice(cs, func(c Coordinate) string {
		return b.SquareName(c)
	})
}
