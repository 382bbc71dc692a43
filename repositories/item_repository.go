package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"nexus-storefront/models"
)

type ItemRepository struct {
	client *APIClient
}

func NewItemRepository(client *APIClient) *ItemRepository {
	return &ItemRepository{client: client}
}

// GetAllItems fetches the catalog. A malformed upstream body is treated as
// an empty catalog, not an error.
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	err := r.client.getJSON(ctx, "/items", "", &items)
	if err != nil {
		if _, ok := err.(*json.SyntaxError); ok {
			return []models.Item{}, nil
		}
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return []models.Item{}, nil
		}
		return nil, err
	}
	return items, nil
}

// AddItem posts a new item upstream as a multipart form, streaming the image
// part through untouched when present. Returns the created item's id.
func (r *ItemRepository) AddItem(ctx context.Context, req models.AddItemRequest, image *multipart.FileHeader, idToken string) (int64, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		writer.WriteField("name", req.Name)
		writer.WriteField("description", req.Description)
		writer.WriteField("price", strconv.FormatFloat(req.Price, 'f', -1, 64))
		writer.WriteField("stock", strconv.Itoa(req.Stock))

		if image != nil {
			src, err := image.Open()
			if err != nil {
				pw.CloseWithError(err)
				return
			}
			defer src.Close()
			part, err := writer.CreateFormFile("image", image.Filename)
			if err != nil {
				pw.CloseWithError(err)
				return
			}
			if _, err := io.Copy(part, src); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		pw.CloseWithError(writer.Close())
	}()

	httpReq, err := r.client.newRequest(ctx, http.MethodPost, "/items/add", pr, idToken)
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	var created struct {
		ItemID int64 `json:"item_id"`
	}
	if err := r.client.doJSON(httpReq, &created); err != nil {
		return 0, err
	}
	if created.ItemID == 0 {
		return 0, fmt.Errorf("upstream returned no item_id")
	}
	return created.ItemID, nil
}

// UpdateItem applies a partial price/stock update. Nil fields are omitted
// from the body so the upstream leaves them unchanged.
func (r *ItemRepository) UpdateItem(ctx context.Context, req models.UpdateItemRequest, idToken string) error {
	return r.client.postJSON(ctx, "/items/update", idToken, req, nil)
}
