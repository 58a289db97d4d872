package cli

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/ksuid"
)

// view is the printable breakdown of one id, shared by both variants.
// Template fields use the Go names: {{.String}} {{.Raw}} {{.Time}}
// {{.Timestamp}} {{.Payload}}.
type view struct {
	String    string    `json:"ksuid" yaml:"ksuid"`
	Raw       string    `json:"raw" yaml:"raw"`
	Time      time.Time `json:"time" yaml:"time"`
	Timestamp uint64    `json:"timestamp" yaml:"timestamp"`
	Payload   string    `json:"payload" yaml:"payload"`
}

func newView[P ksuid.Precision](id ksuid.ID[P]) view {
	return view{
		String:    id.String(),
		Raw:       strings.ToUpper(hex.EncodeToString(id.Bytes())),
		Time:      id.Time(),
		Timestamp: id.Timestamp(),
		Payload:   strings.ToUpper(hex.EncodeToString(id.Payload())),
	}
}

// printer writes views in one output format.
type printer struct {
	format string
	tmpl   *template.Template
}

func newPrinter(cfg Config) (*printer, error) {
	p := &printer{format: cfg.Format}
	if cfg.Format == FormatTemplate {
		tmpl, err := template.New("ksuid").Parse(cfg.Template)
		if err != nil {
			return nil, errors.Join(ErrInvalidTemplate, err)
		}
		p.tmpl = tmpl
	}
	return p, nil
}

func (p *printer) print(w io.Writer, views []view) error {
	if err := p.write(w, views); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}
	return nil
}

func (p *printer) write(w io.Writer, views []view) error {
	switch p.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		for _, v := range views {
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
		return nil
	}

	for i, v := range views {
		var err error
		switch p.format {
		case FormatString:
			_, err = fmt.Fprintln(w, v.String)
		case FormatTime:
			_, err = fmt.Fprintln(w, v.Time.Format(time.RFC3339Nano))
		case FormatTimestamp:
			_, err = fmt.Fprintln(w, v.Timestamp)
		case FormatPayload:
			_, err = fmt.Fprintln(w, v.Payload)
		case FormatRaw:
			_, err = fmt.Fprintln(w, v.Raw)
		case FormatInspect:
			if i > 0 {
				if _, err = fmt.Fprintln(w); err != nil {
					return err
				}
			}
			err = inspect(w, v)
		case FormatTemplate:
			if err = p.tmpl.Execute(w, v); err == nil {
				_, err = fmt.Fprintln(w)
			}
		default:
			return errors.Join(ErrUnknownFormat, fmt.Errorf("%q", p.format))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func inspect(w io.Writer, v view) error {
	_, err := fmt.Fprintf(w, `REPRESENTATION:

  String: %s
     Raw: %s

COMPONENTS:

       Time: %s
  Timestamp: %d
    Payload: %s
`, v.String, v.Raw, v.Time.Format(time.RFC3339Nano), v.Timestamp, v.Payload)
	return err
}
