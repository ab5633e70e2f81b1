package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
	mb "github.com/saeidalz13/battleship-setup/models/battleship"
)

const (
	promptCoordinates = "enter coordinate (x y):"
	promptOrientation = "enter orientation (h v):"
)

// Console reads placements from in and reports the setup to out.
// It implements both mb.PlacementSource and mb.SetupSink.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var (
	_ mb.PlacementSource = (*Console)(nil)
	_ mb.SetupSink       = (*Console)(nil)
)

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (c *Console) readLine() (string, error) {
	if c.scanner.Scan() {
		return strings.TrimSpace(c.scanner.Text()), nil
	}
	if err := c.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// NextPlacement keeps asking until the input parses. Blank lines are skipped.
func (c *Console) NextPlacement(ctx context.Context, _ *mb.Ship) (mb.PlacementRequest, error) {
	var coords mb.Coordinates
	for {
		if err := ctx.Err(); err != nil {
			return mb.PlacementRequest{}, err
		}

		fmt.Fprintln(c.out, promptCoordinates)
		line, err := c.readLine()
		if err != nil {
			return mb.PlacementRequest{}, err
		}
		if line == "" {
			continue
		}

		coords, err = ParseCoordinates(line)
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		break
	}

	for {
		if err := ctx.Err(); err != nil {
			return mb.PlacementRequest{}, err
		}

		fmt.Fprintln(c.out, promptOrientation)
		line, err := c.readLine()
		if err != nil {
			return mb.PlacementRequest{}, err
		}
		if line == "" {
			continue
		}

		orientation, err := mb.ParseOrientation(line)
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		return mb.PlacementRequest{Anchor: coords, Orientation: orientation}, nil
	}
}

// ParseCoordinates accepts "x y" with any amount of whitespace between the numbers.
func ParseCoordinates(line string) (mb.Coordinates, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return mb.Coordinates{}, cerr.ErrInvalidCoordinatesInput(line)
	}

	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInvalidCoordinatesInput(line)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInvalidCoordinatesInput(line)
	}

	return mb.NewCoordinates(x, y), nil
}

func (c *Console) ShipRequested(ship *mb.Ship, boardView string) error {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "> Placing %s, size %d\n", ship.Name(), ship.Length())
	_, err := fmt.Fprint(c.out, boardView)
	return err
}

func (c *Console) PlacementRejected(_ *mb.Ship, _ mb.PlacementRequest, reason error) error {
	_, err := fmt.Fprintln(c.out, "could not place ship:", reason)
	return err
}

func (c *Console) ShipPlaced(_ *mb.Ship, _ []mb.Coordinates) error {
	_, err := fmt.Fprintln(c.out, "ship placed")
	return err
}

func (c *Console) SetupCompleted(boardView string) error {
	fmt.Fprintln(c.out, "--< all ships placed >------------------------------------------")
	_, err := fmt.Fprint(c.out, boardView)
	return err
}
