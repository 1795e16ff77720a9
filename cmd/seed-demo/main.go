package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scholara/campus-backend/internal/cache"
	"github.com/scholara/campus-backend/internal/config"
	"github.com/scholara/campus-backend/internal/database"
	"github.com/scholara/campus-backend/internal/logger"
	"github.com/scholara/campus-backend/internal/model"
	"github.com/scholara/campus-backend/internal/repository"
	"github.com/scholara/campus-backend/internal/service"
)

// Seeds a small demo campus: one building, one section with students,
// a subject catalog and a teaching staff with active assignments.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	cacheCoord := cache.NewCoordinator(rdb, log)

	sectionRepo := repository.NewSectionRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	buildingRepo := repository.NewBuildingRepository(pool)
	studyLoadRepo := repository.NewStudyLoadRepository(pool)

	sectionService := service.NewSectionService(pool, sectionRepo, studyLoadRepo, cacheCoord, cfg.CacheTTL, log)
	subjectService := service.NewSubjectService(subjectRepo, cacheCoord, log)
	buildingService := service.NewBuildingService(buildingRepo, cacheCoord, log)

	fmt.Println("=== Seeding Demo Campus ===")

	// ── Building ──
	building, err := buildingRepo.GetByName(ctx, "Main Building")
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Fatal().Err(err).Msg("Failed to check existing building")
		}
		b := &model.Building{Name: "Main Building", Floors: 4, RoomsPerFloor: 12, Description: "Primary academic building"}
		if err := buildingService.Create(ctx, b); err != nil {
			log.Fatal().Err(err).Msg("Failed to create building")
		}
		building = b
		fmt.Printf("Created building %q with ID: %d\n", b.Name, b.ID)
	} else {
		fmt.Printf("Found existing building %q with ID: %d\n", building.Name, building.ID)
	}

	// ── Section ──
	section, err := sectionRepo.GetByName(ctx, "BSIT-1A")
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Fatal().Err(err).Msg("Failed to check existing section")
		}
		s := &model.Section{
			Name:       "BSIT-1A",
			YearLevel:  "1st Year",
			SchoolYear: "2026-2027",
			Course:     "BSIT",
			Major:      "Information Technology",
		}
		if err := sectionService.Create(ctx, s); err != nil {
			log.Fatal().Err(err).Msg("Failed to create section")
		}
		section = s
		fmt.Printf("Created section %q with ID: %d\n", s.Name, s.ID)
	} else {
		fmt.Printf("Found existing section %q with ID: %d\n", section.Name, section.ID)
	}

	// ── Subjects ──
	subjects := []model.Subject{
		{Code: "IT101", Title: "Introduction to Computing", Units: 3, Course: "BSIT", YearLevel: "1st Year", Semester: "first semester"},
		{Code: "IT102", Title: "Computer Programming 1", Units: 3, Course: "BSIT", YearLevel: "1st Year", Semester: "first semester"},
		{Code: "IT103", Title: "Computer Programming 2", Units: 3, Course: "BSIT", YearLevel: "1st Year", Semester: "2nd sem"},
		{Code: "GE101", Title: "Understanding the Self", Units: 3, Course: "BSIT", YearLevel: "1st Year", Semester: "first semester"},
		{Code: "GE102", Title: "Purposive Communication", Units: 3, Course: "BSIT", YearLevel: "1st Year", Semester: "second semester"},
		{Code: "PE101", Title: "Physical Fitness", Units: 2, Course: "BSIT", YearLevel: "1st Year", Semester: "summer"},
	}
	for i := range subjects {
		sub := subjects[i]
		if _, err := subjectRepo.GetByCode(ctx, sub.Code); err == nil {
			continue
		}
		if err := subjectService.Create(ctx, &sub); err != nil {
			fmt.Printf("Error creating subject %s: %v\n", sub.Code, err)
			continue
		}
		fmt.Printf("Created subject %s (%s)\n", sub.Code, sub.Title)
	}

	// ── Teachers ──
	teachers := [][2]string{
		{"Maria", "Santos"},
		{"Jose", "Reyes"},
		{"Ana", "Cruz"},
		{"Paolo", "Garcia"},
		{"Liza", "Mendoza"},
	}
	for _, t := range teachers {
		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM teachers WHERE first_name = $1 AND last_name = $2)`,
			t[0], t[1],
		).Scan(&exists)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to check existing teacher")
		}
		if exists {
			continue
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO teachers (first_name, last_name) VALUES ($1, $2)`,
			t[0], t[1],
		); err != nil {
			fmt.Printf("Error creating teacher %s %s: %v\n", t[0], t[1], err)
			continue
		}
		fmt.Printf("Created teacher %s %s\n", t[0], t[1])
	}

	// ── Students ──
	names := []string{
		"Juan Dela Cruz", "Maria Clara", "Pedro Penduko", "Rosa Villanueva", "Carlo Aquino",
		"Bea Alonzo", "Marco Bautista", "Elena Ramos", "Nico Fernandez", "Kathryn Torres",
		"Daniel Padilla", "Sofia Andres", "Miguel Castro", "Isabel Navarro", "Rafael Lim",
		"Clarisse Ocampo", "Gabriel Tan", "Patricia Uy", "Samuel Ong", "Bianca Rivera",
		"Adrian Flores", "Camille Gonzales", "Emilio Salazar", "Fatima Diaz", "Gerald Morales",
		"Hannah Aguilar", "Ivan Domingo", "Jasmine Velasco", "Kenneth Rosario", "Lorraine Santiago",
	}

	successCount := 0
	for i, name := range names {
		studentNo := fmt.Sprintf("2026-%05d", i+1)

		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM students WHERE student_no = $1)`, studentNo,
		).Scan(&exists)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to check existing student")
		}
		if exists {
			continue
		}

		if _, err := pool.Exec(ctx,
			`INSERT INTO students (student_no, name, section_id, status) VALUES ($1, $2, $3, 'active')`,
			studentNo, name, section.ID,
		); err != nil {
			fmt.Printf("Error creating student %s (%s): %v\n", name, studentNo, err)
			continue
		}
		successCount++
		if successCount%10 == 0 {
			fmt.Printf("Created %d students...\n", successCount)
		}
	}

	fmt.Printf("\nSeed completed! Added %d/%d students to %s (%s).\n",
		successCount, len(names), section.Name, building.Name)
}
