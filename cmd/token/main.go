package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youstats/internal/config"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/internal/usecases/authenticating"
)

// Emite um token de acesso assinado com AUTH_SECRET para uso nas rotas /v1
func main() {
	user := flag.String("user", "", "nome do usuário gravado no token")
	admin := flag.Bool("admin", false, "emite token com papel de administrador")
	ttl := flag.Duration("ttl", 24*time.Hour, "validade do token")
	flag.Parse()

	if *user == "" {
		logrus.Fatal("informe -user")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	role := domain.RoleViewer
	if *admin {
		role = domain.RoleAdmin
	}

	token, err := authenticating.NewService(cfg).IssueToken(*user, role, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao emitir token")
	}

	logrus.WithFields(logrus.Fields{
		"user": *user,
		"role": role,
		"ttl":  ttl.String(),
	}).Info("Token emitido")

	fmt.Println(token)
}
