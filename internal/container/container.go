package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/formgate/formgate/config"
	"github.com/formgate/formgate/internal/infrastructure/googleapi"
	"github.com/formgate/formgate/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire from these singletons; everything is set once
// in main before the first request.

var (
	cfg    *config.Config
	logger *logrus.Logger
	pgPool *pgxpool.Pool

	jwtManager *helpers.JWTManager
	verifier   *googleapi.Verifier
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetPGPool(p *pgxpool.Pool)         { pgPool = p }
func GetPGPool() *pgxpool.Pool          { return pgPool }
func SetJWT(m *helpers.JWTManager)      { jwtManager = m }
func GetJWT() *helpers.JWTManager       { return jwtManager }
func SetVerifier(v *googleapi.Verifier) { verifier = v }
func GetVerifier() *googleapi.Verifier  { return verifier }
