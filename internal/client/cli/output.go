package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/accountregistry/internal/client"
)

// Output formats command results as text or JSON.
type Output struct {
	format string
	w      io.Writer
}

func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// PrintMessage outputs a simple message.
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
		return
	}
	fmt.Fprintln(o.w, msg)
}

// PrintAccount outputs an account without its password hash.
func (o *Output) PrintAccount(a *client.Account) {
	if o.format == "json" {
		o.printJSON(a)
		return
	}
	fmt.Fprintf(o.w, "ID:         %s\n", a.ID)
	fmt.Fprintf(o.w, "Email:      %s\n", a.Email)
	fmt.Fprintf(o.w, "First name: %s\n", a.FirstName)
	fmt.Fprintf(o.w, "Last name:  %s\n", a.LastName)
	fmt.Fprintf(o.w, "Semester:   %d\n", a.Semester)
	fmt.Fprintf(o.w, "Created:    %s\n", a.CreatedAt.UTC().Format(time.RFC3339))
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}
