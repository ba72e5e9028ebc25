package client

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient builds a client for the project at url. No request is made.
func SupabaseClient(url, apiKey string) (*supabase.Client, error) {
	client, err := supabase.NewClient(url, apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("error to create Supabase client: %w", err)
	}
	return client, nil
}
