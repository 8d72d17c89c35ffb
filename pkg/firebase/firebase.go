package firebase

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Client wraps the Firebase services the app uses: Firestore for the
// cloud-synced collections and Auth for ID token verification.
type Client struct {
	Store *firestore.Client
	Auth  *auth.Client
}

// NewClient creates a Firebase client using the provided credentials file.
// An empty credentialsFile falls back to application default credentials.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	store, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	log.Println("[FIREBASE] Client initialized successfully")
	return &Client{Store: store, Auth: authClient}, nil
}

// Close releases the underlying Firestore connection
func (c *Client) Close() error {
	return c.Store.Close()
}
