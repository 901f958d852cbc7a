package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/isbnkit/internal/config"
	errs "github.com/matzehuels/isbnkit/pkg/errors"
	"github.com/matzehuels/isbnkit/pkg/isbn"
)

// Operation names used in Result.
const (
	opCheck   = "check"
	opFix     = "fix"
	opRandom  = "random"
	opConvert = "convert"
)

// Result is what every operation prints.
type Result struct {
	Operation  string `json:"operation" yaml:"operation"`
	Input      string `json:"input,omitempty" yaml:"input,omitempty"`
	Normalized string `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Variant    string `json:"variant,omitempty" yaml:"variant,omitempty"`
	ISBN       string `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Valid      *bool  `json:"valid,omitempty" yaml:"valid,omitempty"`
	Check      string `json:"expected_check,omitempty" yaml:"expected_check,omitempty"`
}

func checkResult(raw string, family isbn.Family) (Result, error) {
	v, err := isbn.Validate(raw, family)
	if err != nil {
		return Result{}, err
	}
	valid := v.Valid
	return Result{
		Operation:  opCheck,
		Input:      raw,
		Normalized: string(v.Normalized),
		Variant:    v.Variant.String(),
		Valid:      &valid,
		Check:      v.Check,
	}, nil
}

func fixResult(raw string) (Result, error) {
	s, err := isbn.Fix(raw)
	if err != nil {
		return Result{}, err
	}
	return completed(opFix, raw, s)
}

func randomResult(src isbn.Entropy, thirteen bool, prefix string) (Result, error) {
	var (
		s   string
		err error
	)
	if thirteen {
		s, err = isbn.Generate13(src, prefix)
	} else {
		s, err = isbn.Generate(src)
	}
	if err != nil {
		return Result{}, err
	}
	return completed(opRandom, "", s)
}

func convertResult(raw string) (Result, error) {
	d, err := isbn.Normalize(raw)
	if err != nil {
		return Result{}, err
	}
	convert := isbn.To13
	if v, err := isbn.Classify(d); err == nil && v.Family() == isbn.ISBN13 {
		convert = isbn.To10
	}
	s, err := convert(raw)
	if err != nil {
		return Result{}, err
	}
	return completed(opConvert, raw, s)
}

// completed describes a freshly produced, valid identifier.
func completed(op, raw, formatted string) (Result, error) {
	d, err := isbn.Normalize(formatted)
	if err != nil {
		return Result{}, errs.Wrap(errs.ErrCodeInternal, err, "%s produced unreadable ISBN %q", op, formatted)
	}
	v, err := isbn.Classify(d)
	if err != nil {
		return Result{}, errs.Wrap(errs.ErrCodeInternal, err, "%s produced unreadable ISBN %q", op, formatted)
	}
	if !v.Complete() {
		return Result{}, errs.New(errs.ErrCodeInternal, "%s produced ISBN %q without a check digit", op, formatted)
	}
	valid := true
	return Result{
		Operation:  op,
		Input:      raw,
		Normalized: string(d),
		Variant:    v.String(),
		ISBN:       formatted,
		Valid:      &valid,
	}, nil
}

// render writes r in the given format.
func render(w io.Writer, format string, r Result) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText, "":
		_, err := fmt.Fprintln(w, textLine(r))
		return err
	}
	return errs.ValidateOption("output format", format, config.OutputFormats)
}

func textLine(r Result) string {
	if r.Operation != opCheck {
		return r.ISBN
	}
	if r.Valid != nil && *r.Valid {
		return fmt.Sprintf("The ISBN %s is Valid.", r.Input)
	}
	return fmt.Sprintf("The ISBN %s is not Valid. Run with -f to fix it.", r.Input)
}
