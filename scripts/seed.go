// Seeds a demo teacher, a class with a fixed join code, and a small set of
// shared content. Intended for local development and first-run demos only.
//
// Usage: go run scripts/seed.go
package main

import (
	"log"

	"eduquest_backend/internal/config"
	"eduquest_backend/internal/model"
	"eduquest_backend/internal/repository"
	"eduquest_backend/internal/service"
	"eduquest_backend/pkg/database"
	"eduquest_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	cfg.ForceMigrate = true
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, true)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	gameRepo := repository.NewGameRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	shareRepo := repository.NewShareRepository(db)

	authService := service.NewAuthService(userRepo, nil, cfg)
	shareService := service.NewShareService(shareRepo, classRepo, quizRepo, gameRepo, activityRepo)

	teacher := &model.User{
		Name:     "Demo Teacher",
		Email:    "teacher@example.com",
		Password: "demo-password-123",
		Role:     model.Teacher,
		School:   "Demo Primary School",
	}
	if err := authService.Register(teacher); err != nil {
		log.Fatalf("Failed to seed teacher account: %v", err)
	}

	class := &model.Class{
		TeacherID:  teacher.ID,
		Name:       "Year 1 Blue",
		Code:       "DEMO01",
		Grade:      "Year 1",
		SchoolYear: "2026/2027",
	}
	if err := classRepo.Create(class); err != nil {
		log.Fatalf("Failed to seed class: %v", err)
	}

	for _, nickname := range []string{"mia", "leo", "zoe"} {
		if _, err := studentRepo.FindOrCreate(class.ID, nickname); err != nil {
			log.Fatalf("Failed to seed student %q: %v", nickname, err)
		}
	}

	quiz := &model.Quiz{
		TeacherID: teacher.ID,
		Title:     "Letter sounds check",
		Chapter:   "Reading",
	}
	if err := quizRepo.Create(quiz); err != nil {
		log.Fatalf("Failed to seed quiz: %v", err)
	}

	game := &model.Game{
		TeacherID: teacher.ID,
		Title:     "Counting race",
		Chapter:   "Numbers",
	}
	if err := gameRepo.Create(game); err != nil {
		log.Fatalf("Failed to seed game: %v", err)
	}

	activity := &model.Activity{
		TeacherID: teacher.ID,
		Title:     "Trace your name",
		Chapter:   "Writing",
	}
	if err := activityRepo.Create(activity); err != nil {
		log.Fatalf("Failed to seed activity: %v", err)
	}

	shares := []struct {
		contentType model.ContentType
		contentID   uint
	}{
		{model.ContentQuiz, quiz.ID},
		{model.ContentGame, game.ID},
		{model.ContentActivity, activity.ID},
	}
	for _, s := range shares {
		if _, err := shareService.Share(teacher.ID, class.ID, s.contentType, s.contentID); err != nil {
			log.Fatalf("Failed to share %s %d: %v", s.contentType, s.contentID, err)
		}
	}

	log.Printf("Seed complete: teacher %s / class code %s", teacher.Email, class.Code)
}
