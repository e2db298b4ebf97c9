// internal/anexo/anexo.go
package anexo

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Anexo é o shape persistido de um arquivo enviado pelo portal.
type Anexo struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// Lista é um slice de anexos que tolera o legado da coluna: o valor pode
// chegar como array JSON, como string contendo JSON, ou nulo. JSON inválido
// vira lista vazia, nunca erro.
type Lista []Anexo

func (l *Lista) UnmarshalJSON(b []byte) error {
	*l = decodificar(b)
	return nil
}

// Scan implementa sql.Scanner com a mesma regra defensiva do UnmarshalJSON.
func (l *Lista) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = Lista{}
	case []byte:
		*l = decodificar(v)
	case string:
		*l = decodificar([]byte(v))
	default:
		return fmt.Errorf("anexo: tipo de coluna não suportado %T", value)
	}
	return nil
}

func (l Lista) Value() (driver.Value, error) {
	if l == nil {
		l = Lista{}
	}
	b, err := json.Marshal([]Anexo(l))
	return string(b), err
}

func decodificar(b []byte) Lista {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return Lista{}
	}
	// Coluna legada: array JSON codificado dentro de uma string.
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return Lista{}
		}
		return decodificar([]byte(s))
	}
	var itens []Anexo
	if err := json.Unmarshal(b, &itens); err != nil {
		return Lista{}
	}
	return Lista(itens)
}

// ListaTexto aplica a mesma regra defensiva para campos de lista de strings
// (ex.: processos envolvidos de uma não conformidade).
type ListaTexto []string

func (l *ListaTexto) UnmarshalJSON(b []byte) error {
	*l = decodificarTexto(b)
	return nil
}

func (l *ListaTexto) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = ListaTexto{}
	case []byte:
		*l = decodificarTexto(v)
	case string:
		*l = decodificarTexto([]byte(v))
	default:
		return fmt.Errorf("anexo: tipo de coluna não suportado %T", value)
	}
	return nil
}

func (l ListaTexto) Value() (driver.Value, error) {
	if l == nil {
		l = ListaTexto{}
	}
	b, err := json.Marshal([]string(l))
	return string(b), err
}

func decodificarTexto(b []byte) ListaTexto {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return ListaTexto{}
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return ListaTexto{}
		}
		return decodificarTexto([]byte(s))
	}
	var itens []string
	if err := json.Unmarshal(b, &itens); err != nil {
		return ListaTexto{}
	}
	return ListaTexto(itens)
}
