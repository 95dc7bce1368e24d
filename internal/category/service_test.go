package category_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/category"
	categoryDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/category"
)

func TestCategory(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Category Suite")
}

type mockCategoryRepository struct {
	categories map[string]*categoryDatamodel.Category
	references map[string]int64
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{
		categories: make(map[string]*categoryDatamodel.Category),
		references: make(map[string]int64),
	}
}

func (m *mockCategoryRepository) GetByHousehold(householdID string) ([]*categoryDatamodel.Category, error) {
	var out []*categoryDatamodel.Category
	for _, c := range m.categories {
		if c.HouseholdID == householdID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCategoryRepository) GetByID(id string) (*categoryDatamodel.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, errors.ErrCategoryNotFound
	}
	return c, nil
}

func (m *mockCategoryRepository) Create(c *categoryDatamodel.Category) error {
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepository) Delete(id string) error {
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepository) CountReferences(categoryID string) (int64, error) {
	return m.references[categoryID], nil
}

var _ = Describe("Category Service", func() {
	var (
		repo    *mockCategoryRepository
		service *category.Service
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	BeforeEach(func() {
		repo = newMockCategoryRepository()
		service = category.NewService(repo, testLogger)
	})

	Describe("CreateCategory", func() {
		It("creates a category with a generated id", func() {
			created, err := service.CreateCategory("house-1", category.CreateCategoryDTO{
				Name:  "Mascotas",
				Icon:  "🐶",
				Color: "#a3e635",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.HouseholdID).To(Equal("house-1"))
		})

		It("rejects an empty name", func() {
			_, err := service.CreateCategory("house-1", category.CreateCategoryDTO{Name: ""})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("DeleteCategory", func() {
		It("deletes an unreferenced category", func() {
			created, err := service.CreateCategory("house-1", category.CreateCategoryDTO{Name: "Mascotas"})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteCategory(created.ID, "house-1")).To(Succeed())

			list, err := service.ListCategories("house-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})

		It("refuses to delete a category that expenses still reference", func() {
			created, err := service.CreateCategory("house-1", category.CreateCategoryDTO{Name: "Mercado"})
			Expect(err).NotTo(HaveOccurred())
			repo.references[created.ID] = 3

			Expect(service.DeleteCategory(created.ID, "house-1")).To(Equal(errors.ErrCategoryInUse))
		})

		It("refuses to delete across households", func() {
			created, err := service.CreateCategory("house-1", category.CreateCategoryDTO{Name: "Mercado"})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteCategory(created.ID, "house-2")).To(Equal(errors.ErrHouseholdMismatch))
		})

		It("reports unknown ids as not found", func() {
			Expect(service.DeleteCategory("nope", "house-1")).To(Equal(errors.ErrCategoryNotFound))
		})
	})

	Describe("SeedDefaults", func() {
		It("creates the full starter set", func() {
			seeded, err := service.SeedDefaults("house-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(seeded).To(HaveLen(len(categoryDatamodel.Defaults)))

			list, err := service.ListCategories("house-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(len(categoryDatamodel.Defaults)))
		})
	})
})
