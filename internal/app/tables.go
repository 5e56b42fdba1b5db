// internal/app/tables.go
package app

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"biosci/internal/logging"
	"biosci/pkg/api"
)

const opTables = "tables"

func newTablesCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the genetic code tables translate accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := st.open()
			s.send(api.ResponseV1{Op: opTables, OK: true, Result: listTables(st)})
			return s.close(nil)
		},
	}
}

// listTables resolves every registered name once per distinct table,
// ordered by NCBI id with custom tables (id 0) first by name.
func listTables(st *state) []api.GeneticCodeV1 {
	reg := st.env.Tables
	seen := map[string]bool{}
	out := []api.GeneticCodeV1{}
	for _, name := range reg.Names() {
		t, err := reg.Lookup(name)
		if err != nil {
			logging.Warnf(st.stderr, st.cfg.Quiet, "table %q: %v", name, err)
			continue
		}
		key := fmt.Sprintf("%d/%s", t.ID, t.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, api.GeneticCodeV1{
			Name:   t.Name,
			ID:     t.ID,
			Table:  t.String(),
			Starts: t.StartCodons(),
			Stops:  t.StopCodons(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}
