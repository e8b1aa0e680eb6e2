package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/config"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/helpers"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/mailer"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/profanity"
)

// app-level container to share constructed components across packages.
// The router auto-wires its modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	gcsClient   *storage.Client

	jwtManager *helpers.JWTManager

	mailerClient *mailer.Mailer
	rabbitPub    *helpers.RabbitPublisher
	esClient     *elasticsearch.Client
	classifier   *profanity.Detector
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetGCS(s *storage.Client)     { gcsClient = s }
func GetGCS() *storage.Client      { return gcsClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetMailer(m *mailer.Mailer)              { mailerClient = m }
func GetMailer() *mailer.Mailer               { return mailerClient }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }

func SetClassifier(d *profanity.Detector) { classifier = d }
func GetClassifier() *profanity.Detector {
	if classifier == nil {
		classifier = profanity.NewDetector()
	}
	return classifier
}
