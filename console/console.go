// Package console plays a game over plain text streams, one "row col [f]"
// command per line. It is used when stdin is not a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"github.com/tomasstrnad1997/termines/mines"
	"github.com/tomasstrnad1997/termines/session"
)

func Run(ctx context.Context, r io.Reader, w io.Writer, field *mines.Field, log logrus.FieldLogger) (session.State, error) {
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return session.Playing, err
		}
		fmt.Fprintln(w, "****************")
		fmt.Fprintln(w, gotext.Get("flags %d, closed %d", field.FlagsRemaining(), field.ClosedRemaining()))
		field.Print(w)
		if field.GameOver() {
			fmt.Fprintln(w, gotext.Get("CLEARED"))
			return session.Won, nil
		}
		if !scanner.Scan() {
			return session.Playing, scanner.Err()
		}
		result, err := field.ProcessTextCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		log.WithFields(logrus.Fields{
			"command": scanner.Text(),
			"result":  result.Result.String(),
		}).Debug("console move")
		if result.Result == mines.MineBlown {
			field.RevealAllMines()
			field.Print(w)
			fmt.Fprintln(w, gotext.Get("BOOM"))
			return session.Lost, nil
		}
	}
}
