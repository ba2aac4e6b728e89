// Package seed provides helpers to create development and demo data
// for the application database.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/gravatar"
	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers int
	NumPosts int
	Clean    bool
}

var (
	statuses = []string{
		"Developer", "Junior Developer", "Senior Developer", "Manager",
		"Student or Learning", "Instructor", "Intern",
	}

	skillPool = []string{
		"Go", "JavaScript", "TypeScript", "Python", "Rust", "SQL",
		"PostgreSQL", "Redis", "Docker", "Kubernetes", "React", "Vue",
		"HTML", "CSS", "GraphQL", "gRPC", "AWS", "Terraform",
	}

	degrees = []string{
		"BSc", "MSc", "BA", "Bootcamp Certificate", "PhD",
	}

	fields = []string{
		"Computer Science", "Software Engineering", "Mathematics",
		"Information Systems", "Electrical Engineering",
	}
)

// Seed populates the database with fake users, profiles and posts. All
// seeded users share the password "password123".
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	if opts.Clean {
		if err := Clear(db); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("create users: %w", err)
	}
	log.Printf("seeded %d users", len(users))

	profiles, err := createProfiles(db, users)
	if err != nil {
		return fmt.Errorf("create profiles: %w", err)
	}
	log.Printf("seeded %d profiles", len(profiles))

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("create posts: %w", err)
	}
	log.Printf("seeded %d posts", len(posts))

	if err := createEngagement(db, users, posts); err != nil {
		return fmt.Errorf("create engagement: %w", err)
	}

	return nil
}

// Clear removes all seeded data in dependency order.
func Clear(db *gorm.DB) error {
	for _, model := range []any{
		&models.Comment{}, &models.Like{}, &models.Post{},
		&models.Experience{}, &models.Education{}, &models.Profile{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, n int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s%d@%s",
			strings.ToLower(strings.ReplaceAll(name, " ", ".")), i, gofakeit.DomainName())
		users = append(users, models.User{
			Name:     name,
			Email:    email,
			Password: string(hash),
			Avatar:   gravatar.URL(email),
		})
	}
	if err := db.CreateInBatches(&users, 50).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createProfiles(db *gorm.DB, users []models.User) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0, len(users))
	for _, user := range users {
		// Roughly one in five users never fills in a profile.
		if rand.Intn(5) == 0 {
			continue
		}

		skills := make([]string, 0, 4)
		for _, idx := range rand.Perm(len(skillPool))[:2+rand.Intn(3)] {
			skills = append(skills, skillPool[idx])
		}

		profile := models.Profile{
			UserID:   user.ID,
			Status:   statuses[rand.Intn(len(statuses))],
			Skills:   skills,
			Company:  gofakeit.Company(),
			Location: gofakeit.City(),
			Bio:      gofakeit.Sentence(12),
			Social: models.Social{
				Twitter: fmt.Sprintf("https://twitter.com/%s", gofakeit.Username()),
			},
			Experiences: randomExperiences(),
			Education:   randomEducation(),
		}
		if rand.Intn(2) == 0 {
			profile.GithubUsername = gofakeit.Username()
		}
		profiles = append(profiles, profile)
	}
	if len(profiles) == 0 {
		return profiles, nil
	}
	if err := db.CreateInBatches(&profiles, 50).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func randomExperiences() []models.Experience {
	n := rand.Intn(3)
	entries := make([]models.Experience, 0, n)
	for i := 0; i < n; i++ {
		from := gofakeit.DateRange(
			time.Now().AddDate(-10, 0, 0), time.Now().AddDate(-1, 0, 0))
		exp := models.Experience{
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        from,
			Description: gofakeit.Sentence(10),
		}
		if i == 0 && rand.Intn(2) == 0 {
			exp.Current = true
		} else {
			to := gofakeit.DateRange(from, time.Now())
			exp.To = &to
		}
		entries = append(entries, exp)
	}
	return entries
}

func randomEducation() []models.Education {
	n := rand.Intn(2)
	entries := make([]models.Education, 0, n)
	for i := 0; i < n; i++ {
		from := gofakeit.DateRange(
			time.Now().AddDate(-15, 0, 0), time.Now().AddDate(-5, 0, 0))
		to := from.AddDate(3+rand.Intn(2), 0, 0)
		entries = append(entries, models.Education{
			School:       fmt.Sprintf("%s University", gofakeit.City()),
			Degree:       degrees[rand.Intn(len(degrees))],
			FieldOfStudy: fields[rand.Intn(len(fields))],
			From:         from,
			To:           &to,
		})
	}
	return entries
}

func createPosts(db *gorm.DB, users []models.User, n int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]
		posts = append(posts, models.Post{
			UserID: author.ID,
			Name:   author.Name,
			Avatar: author.Avatar,
			Text:   gofakeit.Paragraph(1, 2, 8, " "),
		})
	}
	if err := db.CreateInBatches(&posts, 100).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func createEngagement(db *gorm.DB, users []models.User, posts []models.Post) error {
	var likes []models.Like
	var comments []models.Comment

	for _, post := range posts {
		for _, idx := range rand.Perm(len(users))[:rand.Intn(len(users)/2+1)] {
			likes = append(likes, models.Like{PostID: post.ID, UserID: users[idx].ID})
		}
		for i := 0; i < rand.Intn(4); i++ {
			commenter := users[rand.Intn(len(users))]
			comments = append(comments, models.Comment{
				PostID: post.ID,
				UserID: commenter.ID,
				Name:   commenter.Name,
				Avatar: commenter.Avatar,
				Text:   gofakeit.Sentence(8 + rand.Intn(10)),
			})
		}
	}

	if len(likes) > 0 {
		if err := db.CreateInBatches(&likes, 200).Error; err != nil {
			return err
		}
	}
	if len(comments) > 0 {
		if err := db.CreateInBatches(&comments, 200).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d likes and %d comments", len(likes), len(comments))
	return nil
}
