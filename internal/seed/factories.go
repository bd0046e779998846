package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"sticobytes/internal/models"
	"sticobytes/internal/textutil"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateAdmin persists the demo admin account. Password is admin123.
func (f *Factory) CreateAdmin() (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &models.User{
		Username:     "admin",
		Email:        "admin@sticobytes.com",
		PasswordHash: string(hashed),
		Role:         models.UserRoleAdmin,
	}
	if err := f.db.Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

// CreateCategories persists the fixed category set used by the site.
func (f *Factory) CreateCategories() ([]models.Category, error) {
	names := []string{
		"Web Development",
		"Mobile Apps",
		"Cloud",
		"Design",
		"Company News",
	}
	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, models.Category{
			Name: name,
			Slug: textutil.Slugify(name),
		})
	}
	if err := f.db.Create(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreatePost persists a generated blog post with tags, spread over the
// last 90 days so listings look lived-in.
func (f *Factory) CreatePost(categories []models.Category, published bool) (*models.BlogPost, error) {
	title := strings.TrimSuffix(gofakeit.Sentence(6), ".")
	content := gofakeit.Paragraph(4, 5, 12, "\n\n")
	createdAt := time.Now().Add(-time.Duration(f.rand.Intn(90*24)) * time.Hour)

	post := &models.BlogPost{
		Title:           title,
		Slug:            textutil.Slugify(title) + fmt.Sprintf("-%d", gofakeit.Number(100, 999)),
		Content:         content,
		Excerpt:         textutil.Excerpt(content),
		FeaturedImage:   fmt.Sprintf("https://picsum.photos/seed/%s/1200/630", gofakeit.UUID()),
		Status:          models.PostStatusDraft,
		Views:           int64(f.rand.Intn(500)),
		ReadingTime:     textutil.ReadingTime(content),
		MetaTitle:       title,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	post.MetaDescription = post.Excerpt
	if len(categories) > 0 {
		post.CategoryID = &categories[f.rand.Intn(len(categories))].ID
	}
	if published {
		post.Status = models.PostStatusPublished
		publishedAt := createdAt.Add(time.Duration(f.rand.Intn(48)) * time.Hour)
		post.PublishedAt = &publishedAt
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}

	tagPool := []string{"Go", "React", "AWS", "UX", "API", "Performance", "Tutorial"}
	count := 1 + f.rand.Intn(3)
	for i := 0; i < count; i++ {
		name := tagPool[f.rand.Intn(len(tagPool))]
		tag := models.Tag{Name: name, Slug: textutil.Slugify(name)}
		if err := f.db.Where(models.Tag{Slug: tag.Slug}).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		if err := f.db.Model(post).Association("Tags").Append(&tag); err != nil {
			return nil, err
		}
	}
	return post, nil
}

// CreateServices persists the agency service offerings.
func (f *Factory) CreateServices() error {
	services := []models.Service{
		{Title: "Custom Web Development", Icon: "code", Category: "development", IsFeatured: true},
		{Title: "Mobile App Development", Icon: "smartphone", Category: "development", IsFeatured: true},
		{Title: "Cloud Migration", Icon: "cloud", Category: "infrastructure"},
		{Title: "UI/UX Design", Icon: "palette", Category: "design", IsFeatured: true},
		{Title: "SEO Optimization", Icon: "trending-up", Category: "marketing"},
		{Title: "Technical Consulting", Icon: "users", Category: "consulting"},
	}
	for i := range services {
		services[i].Description = gofakeit.Paragraph(1, 3, 10, " ")
	}
	return f.db.Create(&services).Error
}

// CreateTeamMembers persists a demo team roster.
func (f *Factory) CreateTeamMembers() error {
	positions := []string{
		"Founder & CEO",
		"CTO",
		"Lead Developer",
		"UX Designer",
		"Project Manager",
		"Backend Engineer",
	}
	members := make([]models.TeamMember, 0, len(positions))
	for i, position := range positions {
		members = append(members, models.TeamMember{
			Name:         gofakeit.Name(),
			Position:     position,
			Bio:          gofakeit.Sentence(12),
			PhotoURL:     fmt.Sprintf("https://i.pravatar.cc/300?u=%s", gofakeit.UUID()),
			LinkedinURL:  fmt.Sprintf("https://linkedin.com/in/%s", gofakeit.Username()),
			DisplayOrder: i + 1,
			IsActive:     true,
		})
	}
	return f.db.Create(&members).Error
}

// CreateGadgets persists a demo gadget catalog.
func (f *Factory) CreateGadgets() error {
	statuses := []models.GadgetStockStatus{
		models.GadgetInStock,
		models.GadgetOutOfStock,
		models.GadgetPreOrder,
	}
	gadgets := make([]models.Gadget, 0, 12)
	for i := 0; i < 12; i++ {
		gadgets = append(gadgets, models.Gadget{
			Name:        gofakeit.ProductName(),
			Description: gofakeit.ProductDescription(),
			Price:       gofakeit.Price(20, 900),
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/gadget-%s/600/600", gofakeit.UUID()),
			Category:    gofakeit.ProductCategory(),
			StockStatus: statuses[f.rand.Intn(len(statuses))],
			IsFeatured:  i < 3,
		})
	}
	return f.db.Create(&gadgets).Error
}

// CreateSubscribers persists n active newsletter subscribers.
func (f *Factory) CreateSubscribers(n int) error {
	subs := make([]models.NewsletterSubscriber, 0, n)
	for i := 0; i < n; i++ {
		subs = append(subs, models.NewsletterSubscriber{
			Email:    strings.ToLower(gofakeit.Email()),
			IsActive: true,
		})
	}
	return f.db.Create(&subs).Error
}
