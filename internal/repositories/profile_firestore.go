package repositories

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/Pranav210905/fin/internal/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreProfileRepository reads profile documents from users/{uid}, the
// layout the FinChat web client writes at signup.
type FirestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) *FirestoreProfileRepository {
	return &FirestoreProfileRepository{client: client}
}

func (r *FirestoreProfileRepository) GetProfile(ctx context.Context, id string) (*models.User, error) {
	snap, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile %s: %w", id, err)
	}

	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", id, err)
	}
	// the document id is the uid; it is not stored as a field
	user.ID = snap.Ref.ID
	return &user, nil
}

func (r *FirestoreProfileRepository) SaveProfile(ctx context.Context, user *models.User) error {
	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	return err
}
