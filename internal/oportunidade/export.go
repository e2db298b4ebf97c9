package oportunidade

import (
	"encoding/csv"
	"net/http"

	"github.com/GraoForte/portal-api/internal/respostas"
	"github.com/GraoForte/portal-api/internal/utils"
	"github.com/gocarina/gocsv"
)

type linhaCSV struct {
	ID            uint   `csv:"id"`
	Titulo        string `csv:"titulo"`
	Cliente       string `csv:"cliente"`
	Vendedor      string `csv:"vendedor"`
	Produto       string `csv:"produto"`
	ValorEstimado string `csv:"valor_estimado"`
	Probabilidade int    `csv:"probabilidade"`
	Estagio       string `csv:"estagio"`
	Status        string `csv:"status"`
	CriadaEm      string `csv:"criada_em"`
}

// ExportarCSV trata GET /api/comercial/oportunidades/export — exporta o
// pipeline completo com separador ';' (padrão das planilhas do setor).
func (h *Handler) ExportarCSV(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB, 0)
	if err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao exportar oportunidades")
		return
	}

	linhas := make([]linhaCSV, 0, len(list))
	for _, o := range list {
		linhas = append(linhas, linhaCSV{
			ID:            o.ID,
			Titulo:        o.Titulo,
			Cliente:       o.Cliente,
			Vendedor:      o.Vendedor,
			Produto:       o.Produto,
			ValorEstimado: utils.FormatarMoeda(o.ValorEstimado),
			Probabilidade: o.Probabilidade,
			Estagio:       o.Estagio,
			Status:        o.Status,
			CriadaEm:      utils.FormatarData(o.CreatedAt),
		})
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="oportunidades.csv"`)

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = ';'
	csvWriter.UseCRLF = true
	if err := gocsv.MarshalCSV(&linhas, csvWriter); err != nil {
		respostas.Falha(w, http.StatusInternalServerError, "erro ao gerar CSV")
	}
}
