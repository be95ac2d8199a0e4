package pkg

import "testing"

func TestGenerateAndParsePair(t *testing.T) {
	pair, err := GeneratePair(42)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("empty token in pair")
	}

	claims, err := ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}

	// A refresh token is not a valid access token.
	if _, err = ParseAccess(pair.RefreshToken); err == nil {
		t.Error("refresh token accepted as access token")
	}
}

func TestRefresh(t *testing.T) {
	pair, err := GeneratePair(7)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	next, err := Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	claims, err := ParseAccess(next.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccess after refresh: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}

	if _, err = Refresh(pair.AccessToken); err == nil {
		t.Error("access token accepted for refresh")
	}
	if _, err = Refresh("not-a-token"); err == nil {
		t.Error("garbage accepted for refresh")
	}
}
