package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"founder-net.backend/internal/config"
	"founder-net.backend/internal/domain/entities"
	"founder-net.backend/internal/infrastructure/models"
	"founder-net.backend/internal/infrastructure/repositories"
	"founder-net.backend/internal/usecases"
)

var openSeedDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openSeedSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type seedRuntime interface {
	Migrate() error
	CountUsers(ctx context.Context) (int64, error)
	RegisterUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
	PromoteAdmin(ctx context.Context, userID uuid.UUID) error
	CreateStartup(ctx context.Context, founderID uuid.UUID, input *entities.CreateStartupInput) (*entities.Startup, error)
	RegisterInvestor(ctx context.Context, userID uuid.UUID, input *entities.RegisterInvestorInput) (*entities.Investor, error)
	Follow(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) error
	CreatePost(ctx context.Context, userID uuid.UUID, input *entities.CreateMicroPostInput) (*entities.MicroPost, error)
	AddComment(ctx context.Context, authorID uuid.UUID, input *entities.AddCommentInput) (*entities.Comment, error)
}

type seedDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (seedRuntime, io.Closer, error)
	out     io.Writer
}

type seedRuntimeImpl struct {
	db            *gorm.DB
	userCase      *usecases.UserUsecase
	startupCase   *usecases.StartupUsecase
	investorCase  *usecases.InvestorUsecase
	socialCase    *usecases.SocialUsecase
	micropostCase *usecases.MicroPostUsecase
	commentCase   *usecases.CommentUsecase
}

func (r seedRuntimeImpl) Migrate() error {
	// The uuid column defaults rely on uuid_generate_v4; best effort on
	// engines that already have it or cannot install extensions.
	if err := r.db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Println("could not ensure uuid-ossp extension:", err)
	}
	return r.db.AutoMigrate(
		&models.User{},
		&models.Startup{},
		&models.Entrepreneurship{},
		&models.Investor{},
		&models.Follow{},
		&models.MicroPost{},
		&models.Comment{},
	)
}

func (r seedRuntimeImpl) CountUsers(ctx context.Context) (int64, error) {
	_, total, err := r.userCase.List(ctx, "", 1, 0)
	return total, err
}

func (r seedRuntimeImpl) RegisterUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	return r.userCase.Register(ctx, input)
}

func (r seedRuntimeImpl) PromoteAdmin(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_admin", true).Error
}

func (r seedRuntimeImpl) CreateStartup(ctx context.Context, founderID uuid.UUID, input *entities.CreateStartupInput) (*entities.Startup, error) {
	return r.startupCase.Create(ctx, founderID, input)
}

func (r seedRuntimeImpl) RegisterInvestor(ctx context.Context, userID uuid.UUID, input *entities.RegisterInvestorInput) (*entities.Investor, error) {
	return r.investorCase.Register(ctx, userID, input)
}

func (r seedRuntimeImpl) Follow(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) error {
	return r.socialCase.Follow(ctx, followerID, target)
}

func (r seedRuntimeImpl) CreatePost(ctx context.Context, userID uuid.UUID, input *entities.CreateMicroPostInput) (*entities.MicroPost, error) {
	return r.micropostCase.Create(ctx, userID, input)
}

func (r seedRuntimeImpl) AddComment(ctx context.Context, authorID uuid.UUID, input *entities.AddCommentInput) (*entities.Comment, error) {
	return r.commentCase.Add(ctx, authorID, input)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultSeedDeps() seedDeps {
	return seedDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (seedRuntime, io.Closer, error) {
			db, err := openSeedDB(cfg.Database.URL())
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := openSeedSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			userRepo := repositories.NewUserRepository(db)
			startupRepo := repositories.NewStartupRepository(db)
			investorRepo := repositories.NewInvestorRepository(db)
			followRepo := repositories.NewFollowRepository(db)
			micropostRepo := repositories.NewMicroPostRepository(db)
			commentRepo := repositories.NewCommentRepository(db)
			uow := repositories.NewUnitOfWork(db)

			return seedRuntimeImpl{
				db:            db,
				userCase:      usecases.NewUserUsecase(userRepo, startupRepo, investorRepo, followRepo, micropostRepo),
				startupCase:   usecases.NewStartupUsecase(startupRepo, userRepo, uow),
				investorCase:  usecases.NewInvestorUsecase(investorRepo, userRepo),
				socialCase:    usecases.NewSocialUsecase(followRepo, userRepo, startupRepo),
				micropostCase: usecases.NewMicroPostUsecase(micropostRepo, userRepo),
				commentCase:   usecases.NewCommentUsecase(commentRepo, startupRepo, micropostRepo),
			}, sqlDB, nil
		},
		out: os.Stdout,
	}
}

const demoPassword = "password"

func adminInput(email, password string) *entities.CreateUserInput {
	return &entities.CreateUserInput{
		Name:                 "FounderNet Admin",
		Email:                email,
		Password:             password,
		PasswordConfirmation: password,
		Bio:                  "Keeps the lights on.",
	}
}

func founderSeeds() []*entities.CreateUserInput {
	seeds := []struct {
		name  string
		email string
		bio   string
	}{
		{"Ada Lovelace", "ada@founder.net", "Working on developer tooling."},
		{"Grace Hopper", "grace@founder.net", "Ships early, debugs often."},
		{"Alan Kay", "alan@founder.net", "Angel checks and prototypes."},
	}

	inputs := make([]*entities.CreateUserInput, 0, len(seeds))
	for _, s := range seeds {
		inputs = append(inputs, &entities.CreateUserInput{
			Name:                 s.name,
			Email:                s.email,
			Password:             demoPassword,
			PasswordConfirmation: demoPassword,
			Bio:                  s.bio,
		})
	}
	return inputs
}

func runSeed(args []string, deps seedDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultSeedDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	adminEmail := fs.String("admin-email", "admin@founder.net", "admin account email")
	adminPassword := fs.String("admin-password", "changeme", "admin account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()

	if err := runtime.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	existing, err := runtime.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if existing > 0 {
		_, _ = fmt.Fprintf(deps.out, "database already has %d users, nothing to do\n", existing)
		return nil
	}

	admin, err := runtime.RegisterUser(ctx, adminInput(*adminEmail, *adminPassword))
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	if err := runtime.PromoteAdmin(ctx, admin.ID); err != nil {
		return fmt.Errorf("failed to promote admin user: %w", err)
	}

	var founders []*entities.User
	for _, input := range founderSeeds() {
		u, err := runtime.RegisterUser(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", input.Email, err)
		}
		founders = append(founders, u)
	}
	ada, grace, alan := founders[0], founders[1], founders[2]

	engines, err := runtime.CreateStartup(ctx, ada.ID, &entities.CreateStartupInput{
		Name:    "Analytical Engines",
		Pitch:   "Compute for people who ship.",
		Website: "https://analytical-engines.example",
		Tags:    []string{"compute", "devtools"},
	})
	if err != nil {
		return fmt.Errorf("failed to create startup: %w", err)
	}

	flowmatic, err := runtime.CreateStartup(ctx, grace.ID, &entities.CreateStartupInput{
		Name:  "Flowmatic",
		Pitch: "Plain-language pipelines for data teams.",
		Tags:  []string{"data", "tooling"},
	})
	if err != nil {
		return fmt.Errorf("failed to create startup: %w", err)
	}

	if _, err := runtime.RegisterInvestor(ctx, alan.ID, &entities.RegisterInvestorInput{
		FirmName: "Kay Ventures",
	}); err != nil {
		return fmt.Errorf("failed to register investor: %w", err)
	}

	follows := []struct {
		follower uuid.UUID
		target   entities.FollowTarget
	}{
		{grace.ID, entities.FollowTarget{Type: entities.FollowableTypeUser, ID: ada.ID}},
		{ada.ID, entities.FollowTarget{Type: entities.FollowableTypeUser, ID: grace.ID}},
		{alan.ID, entities.FollowTarget{Type: entities.FollowableTypeUser, ID: ada.ID}},
		{alan.ID, entities.FollowTarget{Type: entities.FollowableTypeStartup, ID: flowmatic.ID}},
		{grace.ID, entities.FollowTarget{Type: entities.FollowableTypeStartup, ID: engines.ID}},
	}
	for _, f := range follows {
		if err := runtime.Follow(ctx, f.follower, f.target); err != nil {
			return fmt.Errorf("failed to create follow: %w", err)
		}
	}

	postSeeds := []struct {
		author  uuid.UUID
		content string
	}{
		{ada.ID, "Sketching the first cut of our pricing page."},
		{ada.ID, "Demo day in six weeks. Heads down."},
		{grace.ID, "Rewrote the ingest path. Half the code, twice the throughput."},
		{grace.ID, "Hiring our first data engineer."},
		{alan.ID, "Reading pitch decks all morning."},
	}
	var posts []*entities.MicroPost
	for _, p := range postSeeds {
		post, err := runtime.CreatePost(ctx, p.author, &entities.CreateMicroPostInput{Content: p.content})
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}

	if _, err := runtime.AddComment(ctx, grace.ID, &entities.AddCommentInput{
		Target: entities.CommentTarget{Type: entities.CommentableTypeStartup, ID: engines.ID},
		Body:   "Strong team, watching closely.",
	}); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	if _, err := runtime.AddComment(ctx, ada.ID, &entities.AddCommentInput{
		Target: entities.CommentTarget{Type: entities.CommentableTypeMicroPost, ID: posts[2].ID},
		Body:   "Impressive numbers.",
	}); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "seed complete")
	_, _ = fmt.Fprintf(deps.out, "users=%d startups=%d follows=%d posts=%d comments=%d\n",
		1+len(founders), 2, len(follows), len(posts), 2)
	_, _ = fmt.Fprintf(deps.out, "admin login: %s / %s\n", *adminEmail, *adminPassword)
	return nil
}

func main() {
	if err := runSeed(os.Args[1:], defaultSeedDeps()); err != nil {
		log.Fatal(err)
	}
}
