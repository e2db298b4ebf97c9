// internal/formulario/catalogo.go
//
// Catálogo declarativo dos checklists de fabricação e instalação. Cada
// entrada substitui o que antes era uma tela inteira por tipo de formulário.
package formulario

// OpcoesPorSetor permite que um setor configure a lista de respostas
// fechadas dos seus checklists sem tocar nas definições.
var OpcoesPorSetor = map[string][]string{
	"solda":     {"Conforme", "Não conforme", "Retrabalho"},
	"pintura":   {"Conforme", "Não conforme", "Retoque"},
	"expedicao": {"Conforme", "Não conforme", "Pendente"},
}

var Catalogo = map[string]Definicao{
	"solda-plataforma": {
		Tipo:   "solda-plataforma",
		Titulo: "Controle de qualidade — solda da plataforma do tombador",
		Setor:  "solda",
		Checkpoints: []Checkpoint{
			{Campo: "cordao_longarinas", Rotulo: "Cordão de solda das longarinas", Criterio: "Sem porosidade, trinca ou mordedura visível", TipoResposta: RespostaOpcao},
			{Campo: "esquadro_plataforma", Rotulo: "Esquadro da plataforma", Criterio: "Diferença entre diagonais até 5 mm", TipoResposta: RespostaOpcao},
			{Campo: "reforcos_articulacao", Rotulo: "Reforços da articulação", Criterio: "Solda contínua em todo o perímetro", TipoResposta: RespostaOpcao, AnexoObrigatorio: true},
			{Campo: "observacoes", Rotulo: "Observações gerais", TipoResposta: RespostaTexto},
		},
	},
	"montagem-coletor": {
		Tipo:   "montagem-coletor",
		Titulo: "Controle de qualidade — montagem do conjunto coletor",
		Setor:  "montagem",
		Checkpoints: []Checkpoint{
			{Campo: "alinhamento_rosca", Rotulo: "Alinhamento da rosca coletora", Criterio: "Folga máxima de 3 mm entre helicoide e calha", TipoResposta: RespostaOpcao},
			{Campo: "fixacao_mancais", Rotulo: "Fixação dos mancais", Criterio: "Torque conforme tabela do projeto", TipoResposta: RespostaOpcao},
			{Campo: "lubrificacao", Rotulo: "Lubrificação inicial", TipoResposta: RespostaOpcao},
			{Campo: "numero_serie_motor", Rotulo: "Número de série do motorredutor", TipoResposta: RespostaTexto},
		},
	},
	"pintura-final": {
		Tipo:   "pintura-final",
		Titulo: "Controle de qualidade — pintura final",
		Setor:  "pintura",
		Checkpoints: []Checkpoint{
			{Campo: "espessura_camada", Rotulo: "Espessura da camada", Criterio: "Mínimo 120 µm em superfície plana", TipoResposta: RespostaOpcao},
			{Campo: "acabamento", Rotulo: "Acabamento visual", Criterio: "Sem escorrimento ou casca de laranja", TipoResposta: RespostaOpcao, AnexoObrigatorio: true},
			{Campo: "cor_padrao", Rotulo: "Cor conforme pedido", TipoResposta: RespostaOpcao},
		},
	},
	"teste-hidraulico": {
		Tipo:   "teste-hidraulico",
		Titulo: "Teste hidráulico do tombador",
		Setor:  "testes",
		Checkpoints: []Checkpoint{
			{Campo: "pressao_trabalho", Rotulo: "Pressão de trabalho", Criterio: "Ciclo completo na pressão nominal sem queda", TipoResposta: RespostaOpcao},
			{Campo: "vazamentos", Rotulo: "Vazamentos em mangueiras e conexões", TipoResposta: RespostaOpcao},
			{Campo: "tempo_ciclo", Rotulo: "Tempo de ciclo de elevação (s)", TipoResposta: RespostaTexto},
			{Campo: "video_teste", Rotulo: "Registro do teste em vídeo", TipoResposta: RespostaOpcao, AnexoObrigatorio: true},
		},
	},
	"instalacao-tombador": {
		Tipo:   "instalacao-tombador",
		Titulo: "Procedimento de instalação do tombador em campo",
		Setor:  "campo",
		Checkpoints: []Checkpoint{
			{Campo: "nivelamento_base", Rotulo: "Nivelamento da base civil", Criterio: "Desnível máximo 2 mm/m", TipoResposta: RespostaOpcao},
			{Campo: "chumbadores", Rotulo: "Chumbadores torqueados", TipoResposta: RespostaOpcao},
			{Campo: "ligacao_eletrica", Rotulo: "Ligação elétrica do painel", Criterio: "Conforme diagrama do projeto", TipoResposta: RespostaOpcao},
			{Campo: "teste_operacional", Rotulo: "Teste operacional assistido", TipoResposta: RespostaOpcao, AnexoObrigatorio: true},
			{Campo: "pendencias", Rotulo: "Pendências registradas", TipoResposta: RespostaTexto},
		},
	},
	"expedicao": {
		Tipo:   "expedicao",
		Titulo: "Checklist de expedição",
		Setor:  "expedicao",
		Checkpoints: []Checkpoint{
			{Campo: "itens_romaneio", Rotulo: "Itens conferidos contra o romaneio", TipoResposta: RespostaOpcao},
			{Campo: "embalagem", Rotulo: "Embalagem e amarração da carga", TipoResposta: RespostaOpcao, AnexoObrigatorio: true},
			{Campo: "manuais", Rotulo: "Manuais e documentação a bordo", TipoResposta: RespostaOpcao},
		},
	},
}
