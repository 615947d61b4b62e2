package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/render"
	"github.com/hailam/chesscore/internal/storage"
	"github.com/hailam/chesscore/internal/uci"
)

// options holds the parsed command line.
type options struct {
	fen       string
	svg       string
	png       string
	db        string
	save      string
	load      string
	list      bool
	find      bool
	uci       bool
	bitboards bool
}

var errInvalidArgs = errors.New("invalid arguments")

func main() {
	var opts options
	flag.StringVar(&opts.fen, "fen", "", "FEN string to decode")
	flag.StringVar(&opts.svg, "svg", "", "write an SVG diagram of the position to file")
	flag.StringVar(&opts.png, "png", "", "write a PNG diagram of the position to file")
	flag.StringVar(&opts.db, "db", "", "position library directory (default $"+storage.EnvDir+" or the user data dir)")
	flag.StringVar(&opts.save, "save", "", "store the -fen position under this name")
	flag.StringVar(&opts.load, "load", "", "load a stored position instead of decoding -fen")
	flag.BoolVar(&opts.list, "list", false, "list stored positions")
	flag.BoolVar(&opts.find, "find", false, "list stored positions with the same hash as the selected one")
	flag.BoolVar(&opts.uci, "uci", false, "run the text protocol on stdin/stdout")
	flag.BoolVar(&opts.bitboards, "bitboards", false, "print every bitboard of the position")
	flag.Parse()

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errInvalidArgs) {
			fmt.Fprintln(os.Stderr, err)
			flag.Usage()
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// validate rejects flag combinations that would otherwise be ignored.
func (o options) validate() error {
	switch {
	case o.save != "" && o.fen == "":
		return fmt.Errorf("%w: -save needs -fen", errInvalidArgs)
	case o.save != "" && o.load != "":
		return fmt.Errorf("%w: -save and -load cannot be combined", errInvalidArgs)
	case o.find && o.fen == "" && o.load == "":
		return fmt.Errorf("%w: -find needs -fen or -load", errInvalidArgs)
	}
	return nil
}

func (o options) needStore() bool {
	return o.save != "" || o.load != "" || o.list || o.find || o.uci
}

// errLinesFailed reports that at least one line of stdin did not decode.
var errLinesFailed = errors.New("some positions failed to decode")

// run executes the command described by opts. The position library, when
// opened, is closed before run returns, on success or failure.
func run(opts options, in io.Reader, out io.Writer) (err error) {
	if err := opts.validate(); err != nil {
		return err
	}

	var store *storage.Storage
	if opts.needStore() {
		store, err = storage.NewStorage(opts.db)
		if err != nil {
			return fmt.Errorf("could not open position library: %w", err)
		}
		defer func() {
			if cerr := store.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}

	if opts.uci {
		if err := uci.New(in, out, store).Run(); err != nil {
			log.Printf("protocol: %v", err)
		}
		return nil
	}

	if opts.list {
		names, err := store.ListPositions()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	if opts.fen == "" && opts.load == "" {
		if !checkLines(in, out) {
			return errLinesFailed
		}
		return nil
	}

	b, err := resolve(opts, store)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, b.String())
	if opts.bitboards {
		fmt.Fprintf(out, "occupied\n%s\n", b.Occupied())
		fmt.Fprintf(out, "white\n%s\n", b.ColorBB(board.White))
		fmt.Fprintf(out, "black\n%s\n", b.ColorBB(board.Black))
	}

	if opts.find {
		names, err := store.FindByHash(b.Hash())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintf(out, "match %s\n", name)
		}
	}

	return writeDiagrams(opts, b)
}

// resolve returns the position named by -load or decoded from -fen,
// saving it under -save when requested.
func resolve(opts options, store *storage.Storage) (*board.Board, error) {
	if opts.load != "" {
		return store.LoadPosition(opts.load)
	}

	if opts.save != "" {
		b, err := store.SavePosition(opts.save, opts.fen)
		if err != nil {
			return nil, err
		}
		log.Printf("saved position %q", opts.save)
		return b, nil
	}

	return board.ParseFEN(opts.fen)
}

func writeDiagrams(opts options, b *board.Board) error {
	ro := render.DefaultOptions()

	if opts.svg != "" {
		if err := writeFile(opts.svg, func(w io.Writer) error { return render.SVG(w, b, ro) }); err != nil {
			return err
		}
		log.Printf("SVG written to %s", opts.svg)
	}
	if opts.png != "" {
		if err := writeFile(opts.png, func(w io.Writer) error { return render.PNG(w, b, ro) }); err != nil {
			return err
		}
		log.Printf("PNG written to %s", opts.png)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// checkLines decodes one FEN per input line and reports each result.
// It returns false if any line failed to decode.
func checkLines(in io.Reader, out io.Writer) bool {
	scanner := bufio.NewScanner(in)
	ok := true
	n := 0

	for scanner.Scan() {
		n++
		line := scanner.Text()
		if line == "" {
			continue
		}
		b, err := board.ParseFEN(line)
		if err != nil {
			ok = false
			fmt.Fprintf(out, "%d: error: %v\n", n, err)
			continue
		}
		fmt.Fprintf(out, "%d: ok %016x\n", n, b.Hash())
	}
	if err := scanner.Err(); err != nil {
		log.Printf("read input: %v", err)
		return false
	}
	return ok
}
