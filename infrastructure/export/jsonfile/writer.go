package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/youstats/internal/config"
	"github.com/vfg2006/youstats/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Writer grava cada relatório como <diretório>/<nome>.json
type Writer struct {
	directory string
}

func NewWriter(cfg *config.Config) *Writer {
	return &Writer{directory: cfg.Export.Directory}
}

func (w *Writer) WriteTabularReport(ctx context.Context, name string, report *domain.TabularReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.ContainsAny(name, `/\`) || strings.TrimSpace(name) == "" {
		return fmt.Errorf("nome de relatório inválido: %q", name)
	}

	if err := os.MkdirAll(w.directory, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de exportação: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório %s: %w", name, err)
	}

	path := filepath.Join(w.directory, name+".json")

	// arquivo temporário exclusivo por escrita; o rename final é atômico
	tmp, err := os.CreateTemp(w.directory, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("erro ao gravar relatório %s: %w", name, err)
	}

	if err := writeAndClose(tmp, data); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("erro ao gravar relatório %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("erro ao gravar relatório %s: %w", name, err)
	}

	logrus.WithField("path", path).Info("Relatório exportado")
	return nil
}

func writeAndClose(file *os.File, data []byte) error {
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Chmod(0o644); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
