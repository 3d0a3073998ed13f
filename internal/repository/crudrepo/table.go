package crudrepo

import (
	"fmt"
	"strings"

	"gofinanceiro/internal/pkg/database"
)

// Column é uma coluna editável de uma tabela.
type Column struct {
	Name string
	// KeepWhenNull faz o UPDATE manter o valor gravado quando o parâmetro vier NULL.
	KeepWhenNull bool
}

// Table descreve um recurso CRUD: tabela, chave, colunas editáveis, projeção
// de leitura e ordenação natural. A mesma projeção é usada em leituras e no
// retorno das mutações, para que POST/PUT/DELETE devolvam o mesmo formato do GET.
//
// Nas instruções geradas a tabela (ou a CTE da mutação) tem o alias "t";
// Projection, Joins e OrderBy devem referenciar as colunas por "t.".
type Table[T any, In any] struct {
	Name       string // nome qualificado, e.g. FINANCEIRO.CLIENTE
	Label      string // nome usado nas mensagens de erro
	Key        string
	Columns    []Column
	Projection string
	Joins      string
	OrderBy    string

	// Args devolve os valores de Columns, na mesma ordem.
	Args func(In) []interface{}
	// Scan lê uma linha da projeção.
	Scan func(database.Scanner) (T, error)
}

// ReadOnly informa se a tabela não aceita mutações por esta API.
func (t Table[T, In]) ReadOnly() bool {
	return len(t.Columns) == 0 || t.Args == nil
}

func (t Table[T, In]) hasColumn(name string) bool {
	if name == t.Key {
		return true
	}
	for _, c := range t.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (t Table[T, In]) selectSQL(whereColumn string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s t", t.Projection, t.Name)
	if t.Joins != "" {
		b.WriteString(" " + t.Joins)
	}
	if whereColumn != "" {
		fmt.Fprintf(&b, " WHERE t.%s = $1", whereColumn)
	}
	if t.OrderBy != "" {
		b.WriteString(" ORDER BY " + t.OrderBy)
	}
	return b.String()
}

// returning envolve a mutação numa CTE e aplica a projeção de leitura ao resultado.
func (t Table[T, In]) returning(mutation string) string {
	q := fmt.Sprintf("WITH t AS (%s RETURNING *) SELECT %s FROM t", mutation, t.Projection)
	if t.Joins != "" {
		q += " " + t.Joins
	}
	return q
}

func (t Table[T, In]) insertSQL() string {
	names := make([]string, len(t.Columns))
	params := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	return t.returning(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(names, ", "), strings.Join(params, ", ")))
}

func (t Table[T, In]) updateSQL() string {
	sets := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		if c.KeepWhenNull {
			sets[i] = fmt.Sprintf("%s = COALESCE($%d, %s)", c.Name, i+1, c.Name)
			continue
		}
		sets[i] = fmt.Sprintf("%s = $%d", c.Name, i+1)
	}
	return t.returning(fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		t.Name, strings.Join(sets, ", "), t.Key, len(t.Columns)+1))
}

func (t Table[T, In]) deleteSQL() string {
	return t.returning(fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Name, t.Key))
}
