package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/catalookup/internal/domain"
	"github.com/kailas-cloud/catalookup/internal/domain/catalog"
	"github.com/kailas-cloud/catalookup/internal/domain/query/result"
	"github.com/kailas-cloud/catalookup/internal/presenter"
)

var queryJSON bool

var queryCmd = &cobra.Command{
	Use:   "query <input...>",
	Short: "Answer a single query",
	Long: `Answer a single query and print the assistant reply.

Arguments are joined with spaces. Inputs made of digits and dots are
treated as codes, everything else as a keyword search.

Examples:
  catalookup-cli query 1.2.5
  catalookup-cli query --json запорный клапан
  catalookup-cli query --catalog https://example.com/catalog.json 3.5`,
	Args: cobra.ArbitraryArgs,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output the structured result as JSON")
}

type recordOutput struct {
	Code           string `json:"code"`
	OfficialName   string `json:"official_name"`
	ElaboratedName string `json:"elaborated_name"`
	ArticleNumber  string `json:"article_number"`
	Orderable      bool   `json:"orderable"`
}

type queryOutput struct {
	Kind       string         `json:"kind"`
	Query      string         `json:"query"`
	BaseCode   string         `json:"base_code,omitempty"`
	Record     *recordOutput  `json:"record,omitempty"`
	Matches    []recordOutput `json:"matches"`
	TotalCount int            `json:"total_count"`
	Truncated  bool           `json:"truncated"`
	Reply      string         `json:"reply"`
	Catalog    bool           `json:"catalog_loaded"`
}

func runQuery(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	res, reply := a.ask(cmd.Context(), strings.Join(args, " "))

	out := cmd.OutOrStdout()
	if queryJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toQueryOutput(res, reply, a.available())); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		fmt.Fprintln(out, reply.PlainText())
	}

	if !a.available() {
		return domain.ErrCatalogUnavailable
	}
	return nil
}

func toRecordOutput(r catalog.Record) recordOutput {
	return recordOutput{
		Code:           r.Code(),
		OfficialName:   r.OfficialName(),
		ElaboratedName: r.ElaboratedName(),
		ArticleNumber:  r.ArticleNumber(),
		Orderable:      r.Orderable(),
	}
}

func toQueryOutput(res result.Result, reply presenter.Reply, loaded bool) queryOutput {
	out := queryOutput{
		Kind:       string(res.Kind()),
		Query:      res.Query(),
		BaseCode:   res.BaseCode(),
		TotalCount: res.TotalCount(),
		Truncated:  res.Truncated(),
		Reply:      reply.PlainText(),
		Catalog:    loaded,
	}
	if rec, ok := res.Record(); ok {
		r := toRecordOutput(rec)
		out.Record = &r
	}
	matches := res.Matches()
	out.Matches = make([]recordOutput, len(matches))
	for i, m := range matches {
		out.Matches[i] = toRecordOutput(m)
	}
	return out
}
