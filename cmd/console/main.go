package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"gofinanceiro/config"
	"gofinanceiro/internal/client"
	"gofinanceiro/internal/console"
	"gofinanceiro/internal/domain"
)

const usage = `Uso: console [-api URL] [-timeout 15s] [-y] <comando> [argumentos]

Comandos:
  list <recurso>                      lista os registros
  get <recurso> <id>                  exibe um registro
  campos <recurso>                    exibe os campos do formulário e suas opções
  add <recurso> campo=valor ...       cria um registro
  edit <recurso> <id> campo=valor ... altera um registro (campos omitidos são mantidos)
  delete <recurso> <id>               remove um registro (pede confirmação sem -y)
  itens <id_pedido>                   lista os itens de um pedido
  logs                                lista o log de alterações
  report <nome> [-inicio D] [-fim D]  executa um relatório

Recursos: %s
Relatórios: %s
`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado. Usando apenas as variáveis do ambiente.")
	}
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg.APIBaseURL, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "ERRO:", err)
		os.Exit(1)
	}
}

// run interpreta a linha de comando e executa a tela correspondente.
func run(ctx context.Context, defaultAPI string, argv []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(stdout)
	apiURL := fs.String("api", defaultAPI, "URL base da API")
	timeout := fs.Duration("timeout", 15*time.Second, "timeout de cada chamada")
	yes := fs.Bool("y", false, "não pede confirmação nas remoções")

	catalog := console.NewCatalog(client.New(*apiURL))
	fs.Usage = func() {
		fmt.Fprintf(stdout, usage, strings.Join(sortedKeys(catalog.Resources), ", "), strings.Join(sortedKeys(catalog.Reports), ", "))
	}
	if err := fs.Parse(argv); err != nil {
		return err
	}
	args := fs.Args()
	if len(args) == 0 {
		fs.Usage()
		return errors.New("nenhum comando informado")
	}

	catalog = console.NewCatalog(client.New(*apiURL, client.WithTimeout(*timeout)))
	cmd, args := args[0], args[1:]

	switch cmd {
	case "list":
		page, err := resourceArg(catalog, args)
		if err != nil {
			return err
		}
		return show(ctx, page, stdout)

	case "get":
		page, id, err := resourceIDArgs(catalog, args)
		if err != nil {
			return err
		}
		if err := page.Load(ctx); err != nil {
			return err
		}
		form, ok := page.FormFor(id)
		if !ok {
			return fmt.Errorf("registro %d não encontrado", id)
		}
		for _, f := range page.FormFields() {
			fmt.Fprintf(stdout, "%s: %s\n", f.Label, form[f.Name])
		}
		return nil

	case "campos":
		page, err := resourceArg(catalog, args)
		if err != nil {
			return err
		}
		if err := page.Load(ctx); err != nil {
			return err
		}
		printWarnings(page, stdout)
		page.RenderForm(stdout)
		return nil

	case "add":
		page, err := resourceArg(catalog, args)
		if err != nil {
			return err
		}
		form, err := parseForm(args[1:])
		if err != nil {
			return err
		}
		if err := page.Load(ctx); err != nil {
			return err
		}
		printWarnings(page, stdout)
		return report(stdout)(page.Submit(ctx, form, 0))

	case "edit":
		page, id, err := resourceIDArgs(catalog, args)
		if err != nil {
			return err
		}
		changes, err := parseForm(args[2:])
		if err != nil {
			return err
		}
		if err := page.Load(ctx); err != nil {
			return err
		}
		form, ok := page.FormFor(id)
		if !ok {
			return fmt.Errorf("registro %d não encontrado", id)
		}
		for k, v := range changes {
			form[k] = v
		}
		return report(stdout)(page.Submit(ctx, form, id))

	case "delete":
		page, id, err := resourceIDArgs(catalog, args)
		if err != nil {
			return err
		}
		if err := page.Load(ctx); err != nil {
			return err
		}
		confirm := func(question string) bool {
			if *yes {
				return true
			}
			fmt.Fprintf(stdout, "%s [s/N] ", question)
			answer, _ := bufio.NewReader(stdin).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			return answer == "s" || answer == "sim"
		}
		msg, err := page.Remove(ctx, id, confirm)
		if errors.Is(err, console.ErrCanceled) {
			fmt.Fprintln(stdout, "Remoção cancelada.")
			return nil
		}
		return report(stdout)(msg, err)

	case "itens":
		if len(args) != 1 {
			return errors.New("uso: itens <id_pedido>")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id de pedido inválido: %q", args[0])
		}
		return show(ctx, catalog.ItensDoPedido(id), stdout)

	case "logs":
		return show(ctx, catalog.Logs, stdout)

	case "report":
		return runReport(ctx, catalog, args, stdout)
	}

	fs.Usage()
	return fmt.Errorf("comando desconhecido: %s", cmd)
}

func runReport(ctx context.Context, catalog *console.Catalog, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("uso: report <nome> [-inicio AAAA-MM-DD] [-fim AAAA-MM-DD]")
	}
	page, ok := catalog.Reports[args[0]]
	if !ok {
		return fmt.Errorf("relatório desconhecido: %s", args[0])
	}

	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stdout)
	inicio := fs.String("inicio", "", "data inicial (AAAA-MM-DD)")
	fim := fs.String("fim", "", "data final (AAAA-MM-DD)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	dates := []struct {
		raw string
		dst *domain.Date
	}{{*inicio, &page.Range.Inicio}, {*fim, &page.Range.Fim}}
	for _, d := range dates {
		if d.raw == "" {
			continue
		}
		parsed, err := domain.ParseDate(d.raw)
		if err != nil {
			return err
		}
		*d.dst = parsed
	}
	return show(ctx, page, stdout)
}

// show carrega e desenha a tela. Falhas de carga já aparecem no banner da tela.
func show(ctx context.Context, page console.Page, stdout io.Writer) error {
	loadErr := page.Load(ctx)
	if err := page.Render(stdout); err != nil {
		return err
	}
	if loadErr != nil {
		return fmt.Errorf("falha ao carregar: %w", loadErr)
	}
	return nil
}

func report(stdout io.Writer) func(msg string, err error) error {
	return func(msg string, err error) error {
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, msg)
		return nil
	}
}

func printWarnings(page console.Editor, stdout io.Writer) {
	for _, w := range page.Warnings() {
		fmt.Fprintln(stdout, "AVISO:", w)
	}
}

func resourceArg(catalog *console.Catalog, args []string) (console.Editor, error) {
	if len(args) == 0 {
		return nil, errors.New("informe o recurso")
	}
	page, ok := catalog.Resources[args[0]]
	if !ok {
		return nil, fmt.Errorf("recurso desconhecido: %s", args[0])
	}
	return page, nil
}

func resourceIDArgs(catalog *console.Catalog, args []string) (console.Editor, int64, error) {
	page, err := resourceArg(catalog, args)
	if err != nil {
		return nil, 0, err
	}
	if len(args) < 2 {
		return nil, 0, errors.New("informe o id do registro")
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return nil, 0, fmt.Errorf("id inválido: %q", args[1])
	}
	return page, id, nil
}

// parseForm lê argumentos no formato campo=valor.
func parseForm(args []string) (console.Form, error) {
	form := console.Form{}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("argumento inválido %q: use campo=valor", arg)
		}
		form[k] = v
	}
	return form, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
