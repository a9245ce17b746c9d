package clap

import (
	"fmt"
	"io"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/tabulate"
	"github.com/yyc12345/YYCCommonplace-sub000/carton/termcolor"
)

// ManualTr holds the translatable strings of a manual.
type ManualTr struct {
	AuthorAndVersion string
	UsageTitle       string
	UsageBody        string
	AvailOpt         string
	AvailVar         string
}

// DefaultManualTr returns the built-in English strings.
func DefaultManualTr() ManualTr {
	return ManualTr{
		AuthorAndVersion: "Invented by %s. Version %s.",
		UsageTitle:       "Usage:",
		UsageBody:        "%s <options> ...",
		AvailOpt:         "Available options:",
		AvailVar:         "Available environment variables:",
	}
}

// Manual renders help and version text for an application.
type Manual struct {
	trctx      ManualTr
	app        *Application
	optPrinter *tabulate.Tabulate
	varPrinter *tabulate.Tabulate
}

// NewManual builds a manual for app.
func NewManual(app *Application, trctx ManualTr) *Manual {
	m := &Manual{
		trctx:      trctx,
		app:        app,
		optPrinter: tabulate.New(3),
		varPrinter: tabulate.New(2),
	}
	m.setupTables()
	m.fillOptTable()
	m.fillVarTable()
	return m
}

func (m *Manual) setupTables() {
	for _, printer := range []*tabulate.Tabulate{m.optPrinter, m.varPrinter} {
		printer.ShowHeader(false)
		printer.ShowBar(false)
		printer.SetPrefix("    ")
	}
}

func (m *Manual) fillOptTable() {
	for _, opt := range m.app.Options().All() {
		m.optPrinter.AddRow([]string{
			opt.ShowcaseName(),
			opt.ShowcaseValue(),
			opt.Description(),
		})
	}
}

func (m *Manual) fillVarTable() {
	for _, v := range m.app.Variables().All() {
		m.varPrinter.AddRow([]string{v.Name(), v.Description()})
	}
}

// PrintVersion writes the application's version banner to dst.
func (m *Manual) PrintVersion(dst io.Writer) error {
	summary := m.app.Summary()
	if err := termcolor.Cprintln(dst, summary.Name(), termcolor.Default, termcolor.Default, termcolor.Bold); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(dst, m.trctx.AuthorAndVersion+"\n", summary.Author(), summary.Version()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(dst, summary.Description())
	return err
}

// PrintHelp writes the application's usage text to dst.
func (m *Manual) PrintHelp(dst io.Writer) error {
	if err := m.PrintVersion(dst); err != nil {
		return err
	}
	summary := m.app.Summary()

	if _, err := fmt.Fprintln(dst); err != nil {
		return err
	}
	if err := termcolor.Cprintln(dst, m.trctx.UsageTitle, termcolor.Default, termcolor.Default, termcolor.Bold); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(dst, "    "+m.trctx.UsageBody+"\n", summary.BinName()); err != nil {
		return err
	}

	if !m.app.Options().Empty() {
		if _, err := fmt.Fprintln(dst); err != nil {
			return err
		}
		if err := termcolor.Cprintln(dst, m.trctx.AvailOpt, termcolor.Default, termcolor.Default, termcolor.Bold); err != nil {
			return err
		}
		if err := m.optPrinter.Print(dst); err != nil {
			return err
		}
	}

	if !m.app.Variables().Empty() {
		if _, err := fmt.Fprintln(dst); err != nil {
			return err
		}
		if err := termcolor.Cprintln(dst, m.trctx.AvailVar, termcolor.Default, termcolor.Default, termcolor.Bold); err != nil {
			return err
		}
		if err := m.varPrinter.Print(dst); err != nil {
			return err
		}
	}
	return nil
}
