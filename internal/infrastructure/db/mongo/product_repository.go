package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/simplesdental/product-api/internal/core/domain"
)

const productsCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

// categorySubdoc is the category snapshot embedded in each product document.
type categorySubdoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Status      bool               `bson:"status"`
	Code        string             `bson:"code"`
	NumericCode int                `bson:"numeric_code"`
	Category    *categorySubdoc    `bson:"category,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (d productDoc) toDomain() *domain.Product {
	p := &domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Status:      d.Status,
		Code:        d.Code,
		NumericCode: d.NumericCode,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
	if d.Category != nil {
		p.CategoryID = d.Category.ID.Hex()
		p.Category = &domain.Category{
			ID:          d.Category.ID.Hex(),
			Name:        d.Category.Name,
			Description: d.Category.Description,
			CreatedAt:   unixToTime(d.Category.CreatedAt),
			UpdatedAt:   unixToTime(d.Category.UpdatedAt),
		}
	}
	return p
}

func toProductDoc(p *domain.Product) (productDoc, error) {
	doc := productDoc{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Status:      p.Status,
		Code:        p.Code,
		NumericCode: p.NumericCode,
		CreatedAt:   p.CreatedAt.Unix(),
		UpdatedAt:   p.UpdatedAt.Unix(),
	}
	if p.Category != nil {
		catID, err := primitive.ObjectIDFromHex(p.Category.ID)
		if err != nil {
			return productDoc{}, domain.ErrCategoryNotFound
		}
		doc.Category = &categorySubdoc{
			ID:          catID,
			Name:        p.Category.Name,
			Description: p.Category.Description,
			CreatedAt:   p.Category.CreatedAt.Unix(),
			UpdatedAt:   p.Category.UpdatedAt.Unix(),
		}
	}
	return doc, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}
	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc, err := toProductDoc(product)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *product
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}
	doc, err := toProductDoc(product)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context, nameFilter string, page, size int) ([]*domain.Product, int64, error) {
	filter := bson.M{}
	if nameFilter != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: nameFilter, Options: "i"}}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(page) * int64(size)).
		SetLimit(int64(size)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []*domain.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}
	return products, total, nil
}
