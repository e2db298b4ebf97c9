package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/GraoForte/portal-api/internal/acaocorretiva"
	"github.com/GraoForte/portal-api/internal/atividade"
	"github.com/GraoForte/portal-api/internal/auth"
	"github.com/GraoForte/portal-api/internal/dashboard"
	"github.com/GraoForte/portal-api/internal/formulario"
	"github.com/GraoForte/portal-api/internal/ia"
	"github.com/GraoForte/portal-api/internal/naoconformidade"
	"github.com/GraoForte/portal-api/internal/oportunidade"
	"github.com/GraoForte/portal-api/internal/upload"
	"github.com/GraoForte/portal-api/internal/usuario"
	"github.com/GraoForte/portal-api/internal/utils/db"
	"github.com/GraoForte/portal-api/internal/vendedor"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&vendedor.Vendedor{},
		&oportunidade.Oportunidade{},
		&atividade.Atividade{},
		&naoconformidade.NaoConformidade{},
		&acaocorretiva.AcaoCorretiva{},
		&formulario.Registro{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	oportunidadeHandler := oportunidade.NewHandler(database)
	vendedorHandler := vendedor.NewHandler(database)
	atividadeHandler := atividade.NewHandler(database)
	dashboardHandler := dashboard.NewHandler(database)
	ncHandler := naoconformidade.NewHandler(database)
	racHandler := acaocorretiva.NewHandler(database)
	formularioHandler := formulario.NewHandler(database)
	iaHandler := ia.NewHandler()

	// Router
	r := mux.NewRouter()

	// Rota pública
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Tudo sob /api exige token
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de usuários
	api.HandleFunc("/usuarios/me", usuarioHandler.Me).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.Atualizar).Methods("PUT")

	admin := api.PathPrefix("").Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	admin.HandleFunc("/usuarios/{id}/resetar-senha", usuarioHandler.ResetarSenha).Methods("POST")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Deletar).Methods("DELETE")

	// Rotas do comercial
	api.HandleFunc("/comercial/oportunidades", oportunidadeHandler.Listar).Methods("GET")
	api.HandleFunc("/comercial/oportunidades", oportunidadeHandler.Criar).Methods("POST")
	api.HandleFunc("/comercial/oportunidades/export", oportunidadeHandler.ExportarCSV).Methods("GET")
	api.HandleFunc("/comercial/oportunidades/{id}", oportunidadeHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/comercial/oportunidades/{id}", oportunidadeHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/comercial/oportunidades/{id}", oportunidadeHandler.Deletar).Methods("DELETE")

	api.HandleFunc("/comercial/vendedores", vendedorHandler.Listar).Methods("GET")
	api.HandleFunc("/comercial/vendedores", vendedorHandler.Criar).Methods("POST")
	api.HandleFunc("/comercial/vendedores/{id}", vendedorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/comercial/vendedores/{id}", vendedorHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/comercial/vendedores/{id}", vendedorHandler.Deletar).Methods("DELETE")

	api.HandleFunc("/comercial/atividades", atividadeHandler.Listar).Methods("GET")
	api.HandleFunc("/comercial/atividades", atividadeHandler.Criar).Methods("POST")
	api.HandleFunc("/comercial/atividades/totais", atividadeHandler.Totais).Methods("GET")
	api.HandleFunc("/comercial/atividades/{id}", atividadeHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/comercial/atividades/{id}", atividadeHandler.Deletar).Methods("DELETE")

	api.HandleFunc("/comercial/dashboard", dashboardHandler.Painel).Methods("GET")

	// Rotas de qualidade
	api.HandleFunc("/qualidade/nao-conformidade", ncHandler.Listar).Methods("GET")
	api.HandleFunc("/qualidade/nao-conformidade", ncHandler.Criar).Methods("POST")
	api.HandleFunc("/qualidade/nao-conformidade/{id}", ncHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/qualidade/nao-conformidade/{id}", ncHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/qualidade/nao-conformidade/{id}", ncHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/qualidade/nao-conformidade/{id}/status", ncHandler.MudarStatus).Methods("PATCH")

	api.HandleFunc("/qualidade/acao-corretiva", racHandler.Listar).Methods("GET")
	api.HandleFunc("/qualidade/acao-corretiva", racHandler.Criar).Methods("POST")
	api.HandleFunc("/qualidade/acao-corretiva/{id}", racHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/qualidade/acao-corretiva/{id}", racHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/qualidade/acao-corretiva/{id}", racHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/qualidade/acao-corretiva/{id}/status", racHandler.MudarStatus).Methods("PATCH")

	api.HandleFunc("/qualidade/ia/analisar-causas", iaHandler.AnalisarCausas).Methods("POST")

	// Rotas de formulários (um motor só atende todos os tipos do catálogo)
	api.HandleFunc("/formularios/definicoes", formularioHandler.ListarDefinicoes).Methods("GET")
	api.HandleFunc("/formularios/opcoes", formularioHandler.OpcoesDoSetor).Methods("GET")
	api.HandleFunc("/formularios-{tipo}/{opd}", formularioHandler.Submeter).Methods("POST")
	api.HandleFunc("/formularios-{tipo}/{opd}", formularioHandler.BuscarUltimo).Methods("GET")

	// Upload de anexos
	storage, err := upload.NewStorage()
	if err != nil {
		log.Printf("Upload desabilitado: %v", err)
	} else {
		uploadHandler := upload.NewHandler(storage)
		api.HandleFunc("/upload", uploadHandler.Enviar).Methods("POST")
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
