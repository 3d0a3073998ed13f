package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gofinanceiro/internal/domain"
)

// Money formata um valor em reais no padrão brasileiro: R$ 1.234,56.
func Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return fmt.Sprintf("%sR$ %s,%s", sign, groupThousands(intPart), frac)
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// DateBR formata uma data como dd/mm/aaaa; a data zero vira "-".
func DateBR(d domain.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format("02/01/2006")
}

// DateTimeBR formata um instante como dd/mm/aaaa hh:mm:ss.
func DateTimeBR(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006 15:04:05")
}

// Text devolve o conteúdo de um campo opcional, ou "-".
func Text(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// ID devolve um id opcional como texto, ou "-".
func ID(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}

// Funções de formatação das células de relatório. Os valores chegam do JSON
// genérico: números como float64 ou string, datas como string.

// CellText formata um valor qualquer de relatório.
func CellText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "sim"
		}
		return "não"
	}
	return fmt.Sprint(v)
}

// CellMoney formata um valor monetário de relatório.
func CellMoney(v interface{}) string {
	d, ok := toDecimal(v)
	if !ok {
		return CellText(v)
	}
	return Money(d)
}

// CellDate formata uma data de relatório como dd/mm/aaaa.
func CellDate(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return CellText(v)
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return s
	}
	return DateBR(d)
}

// CellMonth formata o início de um mês como mm/aaaa.
func CellMonth(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return CellText(v)
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return s
	}
	return d.Format("01/2006")
}

func toDecimal(v interface{}) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case string:
		d, err := decimal.NewFromString(x)
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(x), true
	}
	return decimal.Zero, false
}

// Funções de leitura dos campos do formulário.

func parseInt64(label, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s deve ser um número inteiro", label)
	}
	return n, nil
}

func parseOptionalID(label, s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	n, err := parseInt64(label, s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseInt(label, s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s deve ser um número inteiro", label)
	}
	return n, nil
}

// parseDecimal aceita ponto ou vírgula como separador decimal.
func parseDecimal(label, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s deve ser um valor numérico", label)
	}
	return d, nil
}

func parseDate(label, s string) (domain.Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return domain.NewDate(t.Year(), t.Month(), t.Day()), nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("%s deve ser uma data (AAAA-MM-DD ou DD/MM/AAAA)", label)
	}
	return d, nil
}

func parseOptionalDate(label, s string) (*domain.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := parseDate(label, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
