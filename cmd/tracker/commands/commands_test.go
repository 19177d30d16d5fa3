package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matheuseschaves/supermarket-tracker/cmd/tracker/output"
	"github.com/matheuseschaves/supermarket-tracker/internal/dto"
	"github.com/matheuseschaves/supermarket-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t      *testing.T
	dbPath string
	dir    string
}

func newHarness(t *testing.T) *harness {
	dir := t.TempDir()
	t.Setenv("BACKUP_DIR", filepath.Join(dir, "backups"))
	return &harness{t: t, dbPath: filepath.Join(dir, "supermercado.db"), dir: dir}
}

// run executes the CLI with stdin and returns what it printed.
func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	var buf bytes.Buffer
	prev := output.Out
	output.Out = &buf
	defer func() { output.Out = prev }()

	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"--db", h.dbPath}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err := cmd.Execute()
	return buf.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run("", args...)
	require.NoError(h.t, err, out)
	return out
}

func TestCategoriesCommands(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("categories", "list")
	assert.Contains(t, out, "Hortifrúti")

	out = h.mustRun("categories", "add", "Pet")
	assert.Contains(t, out, "Categoria 'Pet' criada")

	_, err := h.run("", "categories", "add", "Pet")
	assert.ErrorIs(t, err, service.ErrDuplicateCategory)
}

func TestProductAndPurchaseCommands(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("products", "save", "--nome", "Leite", "--marca", "Marca X", "--categoria", "Laticínios")
	assert.Contains(t, out, "Produto cadastrado com sucesso!")

	out = h.mustRun("--json", "search", "lei")
	var labels []string
	require.NoError(t, json.Unmarshal([]byte(out), &labels))
	assert.Equal(t, []string{"Leite (Marca X)"}, labels)

	out = h.mustRun("purchases", "add", "--produto", "Leite (Marca X)", "--supermercado", "Extra", "--preco", "4,50", "--data", "01/02/2024")
	assert.Contains(t, out, "Compra registrada com sucesso!")
	assert.Contains(t, out, "R$ 4,50")

	h.mustRun("purchases", "add", "--produto", "Leite", "--supermercado", "Extra", "--preco", "9", "--quantidade", "2", "--data", "02/02/2024", "--pagou", "")

	_, err := h.run("", "purchases", "add", "--produto", "Café", "--supermercado", "Extra", "--preco", "9")
	assert.ErrorIs(t, err, service.ErrProductNotFound)

	out = h.mustRun("purchases", "list", "--produto", "Leite")
	assert.Contains(t, out, "2 compra(s)")
	assert.Contains(t, out, "Não informado")
	assert.Contains(t, out, "Preço médio")

	out = h.mustRun("--json", "stats", "Leite")
	var st dto.EstatisticasResponse
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.EqualValues(t, 2, st.TotalCompras)
	assert.Equal(t, "4.5", st.PrecoMedio.String())

	out = h.mustRun("--json", "purchases", "recent")
	var recent dto.CompraListResponse
	require.NoError(t, json.Unmarshal([]byte(out), &recent))
	assert.Equal(t, 2, recent.Total)

	out = h.mustRun("stores", "list")
	assert.Contains(t, out, "Extra")

	out = h.mustRun("payers")
	assert.Contains(t, out, "Parceiro(a)")
}

func TestProductDeleteConfirmations(t *testing.T) {
	h := newHarness(t)
	h.mustRun("products", "save", "--nome", "Pão")
	h.mustRun("purchases", "add", "--produto", "Pão", "--supermercado", "Padaria", "--preco", "1,50", "--data", "01/02/2024")

	// declined at the first question
	out, err := h.run("n\n", "products", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Exclusão cancelada")

	// accepted, then declined the cascade
	out, err = h.run("s\nn\n", "products", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 compra(s) registrada(s)")
	assert.Contains(t, out, "Exclusão cancelada")
	assert.Contains(t, h.mustRun("products", "list"), "Pão")

	// --yes without --cascade refuses
	_, err = h.run("", "products", "delete", "1", "--yes")
	assert.ErrorIs(t, err, service.ErrProductHasPurchases)

	out, err = h.run("s\ns\n", "products", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "e suas 1 compra(s) foram excluídos")
	assert.Contains(t, h.mustRun("products", "list"), "Nenhum produto cadastrado")
}

func TestChartAndBackupCommands(t *testing.T) {
	h := newHarness(t)
	h.mustRun("products", "save", "--nome", "Leite")
	h.mustRun("purchases", "add", "--produto", "Leite", "--supermercado", "Extra", "--preco", "4,50", "--data", "01/02/2024")

	pdf := filepath.Join(h.dir, "leite.pdf")
	out := h.mustRun("chart", "Leite", "-o", pdf)
	assert.Contains(t, out, "Gráfico salvo")
	b, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))

	_, err = h.run("", "chart", "Chocolate", "-o", filepath.Join(h.dir, "x.pdf"))
	assert.Error(t, err)

	out = h.mustRun("backup")
	assert.Contains(t, out, "Backup criado com sucesso")
	out = h.mustRun("--json", "backup", "list")
	var files []string
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	assert.Len(t, files, 1)
}

func TestChartFileName(t *testing.T) {
	assert.Equal(t, "grafico_Leite_Integral.pdf", chartFileName("Leite Integral"))
	assert.Equal(t, "grafico_a_b.pdf", chartFileName("a/b"))
}

func TestReadLineStopsAtNewline(t *testing.T) {
	in := strings.NewReader("sim\nnao\n")
	assert.Equal(t, "sim", readLine(in))
	assert.Equal(t, "nao", readLine(in))
	assert.Equal(t, "", readLine(in))
}
