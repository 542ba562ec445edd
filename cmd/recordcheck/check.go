package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/recordkit/pkg/i18n"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/metrics"
	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// errRecordsRejected makes the process exit with status 1 after the report
// has already been printed.
var errRecordsRejected = errors.New("records rejected")

type checkOptions struct {
	schemaPath  string
	recordsPath string
	lang        string
	metricsOut  string
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a list of records against a schema",
		Long: `Builds one record per item of the records file. Mapping items supply
values by field name, sequence items supply them by position.
Exits with status 1 when any record is rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "schema YAML file")
	cmd.Flags().StringVarP(&opts.recordsPath, "records", "r", "", "records YAML file")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "report language (defaults to RECORDCHECK_LANG, then LANG)")
	cmd.Flags().StringVar(&opts.metricsOut, "metrics-out", "", "write Prometheus metrics in text format to this file")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("records")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, opts *checkOptions) error {
	s, err := schema.LoadYAMLFile(opts.schemaPath)
	if err != nil {
		return err
	}
	items, err := loadRecords(opts.recordsPath)
	if err != nil {
		return err
	}

	tr, err := i18n.NewDefault(cmd.Context(), i18n.WithLogger(a.log))
	if err != nil {
		return err
	}
	lang := tr.Match(opts.lang, a.settings.Lang, os.Getenv("LANG"))

	collector := metrics.NewCollector("")
	observer := record.Observers(record.NewLogObserver(a.log), collector)

	out := a.output(cmd)
	accepted := out.String(tr.T(lang, "report.accepted")).Foreground(out.Color("2"))
	rejectedLabel := out.String(tr.T(lang, "report.rejected")).Foreground(out.Color("1")).Bold()

	rejected := 0
	for i, item := range items {
		if err := buildRecord(s, item, record.WithObserver(observer)); err != nil {
			rejected++
			fmt.Fprintf(out, "#%d %s: %s\n", i+1, rejectedLabel, describe(tr, lang, err))
			continue
		}
		fmt.Fprintf(out, "#%d %s\n", i+1, accepted)
	}

	fmt.Fprintln(out, tr.N(lang, "report.summary", rejected, "total", strconv.Itoa(len(items))))
	a.log.Info("check finished",
		logger.Schema(s.Name()),
		logger.Count(len(items)),
		slog.Int("rejected", rejected),
	)

	if opts.metricsOut != "" {
		reg := prometheus.NewRegistry()
		if err := reg.Register(collector); err != nil {
			return err
		}
		if err := prometheus.WriteToTextfile(opts.metricsOut, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Debug("metrics written", logger.Path(opts.metricsOut))
	}

	if rejected > 0 {
		return errRecordsRejected
	}
	return nil
}

func loadRecords(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	var items []any
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse records %s: %w", path, err)
	}
	return items, nil
}

func buildRecord(s *schema.Schema, item any, opts ...record.Option) error {
	var err error
	switch v := item.(type) {
	case map[string]any:
		_, err = record.New(s, v, opts...)
	case []any:
		_, err = record.NewPositional(s, v, nil, opts...)
	case nil:
		_, err = record.New(s, map[string]any{}, opts...)
	default:
		err = fmt.Errorf("record must be a mapping or a sequence, got %T", item)
	}
	return err
}

// describe renders a rejection in lang, naming the field when there is one.
func describe(tr *i18n.Translator, lang string, err error) string {
	var fe *schema.FieldError
	if errors.As(err, &fe) {
		return tr.Error(lang, validator.NewValidationError(fe.Field, fe.Err))
	}
	return tr.Error(lang, err)
}
