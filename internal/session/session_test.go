package session

import (
	"testing"

	"mzansimarket/internal/domain"
)

func TestInitialState(t *testing.T) {
	s := NewStore().Get("sid-1")
	st := s.Snapshot()
	if st.LoggedIn || st.User != nil {
		t.Fatal("fresh session must be unauthenticated")
	}
	if st.View != ViewMarket {
		t.Fatalf("fresh session must start on market, got %q", st.View)
	}
	if st.Selected != nil {
		t.Fatal("fresh session must have no detail overlay")
	}
}

func TestLoginLandsOnDashboardAndClearsOverlay(t *testing.T) {
	s := NewStore().Get("sid-1")
	s.SelectProduct(domain.Product{ID: "p1"})
	s.Login()
	st := s.Snapshot()
	if !st.LoggedIn || st.User == nil || st.User.Name != PlaceholderUser {
		t.Fatalf("login should set the placeholder identity, got %+v", st.User)
	}
	if st.View != ViewDashboard {
		t.Fatalf("login should land on dashboard, got %q", st.View)
	}
	if st.Selected != nil {
		t.Fatal("login should dismiss the detail overlay")
	}
}

func TestLogoutReturnsToMarketAndClearsIdentity(t *testing.T) {
	s := NewStore().Get("sid-1")
	s.Login()
	s.SelectProduct(domain.Product{ID: "p1"})
	s.Logout()
	st := s.Snapshot()
	if st.LoggedIn || st.User != nil {
		t.Fatal("logout should clear the identity")
	}
	if st.View != ViewMarket {
		t.Fatalf("logout should land on market, got %q", st.View)
	}
	if st.Selected != nil {
		t.Fatal("logout should dismiss the detail overlay")
	}
}

func TestOverlayPrecedenceAndBack(t *testing.T) {
	s := NewStore().Get("sid-1")
	s.Login() // dashboard
	s.SelectProduct(domain.Product{ID: "p1", Name: "Necklace"})

	st := s.Snapshot()
	if st.Selected == nil || st.Selected.ID != "p1" {
		t.Fatal("selecting a product must set the overlay regardless of view")
	}
	if st.View != ViewDashboard {
		t.Fatal("selecting a product must not change the underlying view")
	}

	s.Back()
	st = s.Snapshot()
	if st.Selected != nil {
		t.Fatal("back should dismiss the overlay")
	}
	if st.View != ViewDashboard {
		t.Fatalf("back should fall to the previously active view, got %q", st.View)
	}
}

func TestNavigateClearsOverlay(t *testing.T) {
	s := NewStore().Get("sid-1")
	s.SelectProduct(domain.Product{ID: "p1"})
	s.NavigateTo(ViewMarket)
	if st := s.Snapshot(); st.Selected != nil {
		t.Fatal("choosing a top-level view should dismiss the overlay")
	}
}

func TestGenerationAppliesToCurrentForm(t *testing.T) {
	s := NewStore().Get("sid-1")
	s.UpdateDraft("Biltong", "120", "", "Food & Drink", "data:image/png;base64,xx", []byte{1, 2}, "image/png")

	tok, name, img, mime := s.BeginGeneration()
	if name != "Biltong" || len(img) != 2 || mime != "image/png" {
		t.Fatalf("generation inputs not snapshot from draft: %q %v %q", name, img, mime)
	}
	if d := s.Snapshot().Draft; !d.Generating || d.Description != GeneratingPlaceholder {
		t.Fatalf("draft should show the generating placeholder, got %+v", d)
	}

	if !s.ApplyGeneration(tok, "Air-dried and delicious.", "") {
		t.Fatal("result for the live token must apply")
	}
	d := s.Snapshot().Draft
	if d.Generating || d.Description != "Air-dried and delicious." || d.Err != "" {
		t.Fatalf("unexpected draft after apply: %+v", d)
	}
}

func TestGenerationFailureClearsDescription(t *testing.T) {
	s := NewStore().Get("sid-1")
	s.UpdateDraft("Biltong", "120", "old text", "Food & Drink", "u", []byte{1}, "image/png")
	tok, _, _, _ := s.BeginGeneration()

	if !s.ApplyGeneration(tok, "", "Failed to generate AI description. Please try again.") {
		t.Fatal("failure for the live token must apply")
	}
	d := s.Snapshot().Draft
	if d.Description != "" {
		t.Fatalf("failure should clear the description, got %q", d.Description)
	}
	if d.Err == "" {
		t.Fatal("failure should surface an inline error")
	}
}

func TestStaleGenerationResultIsDiscarded(t *testing.T) {
	s := NewStore().Get("sid-1")
	s.UpdateDraft("Biltong", "120", "", "Food & Drink", "u", []byte{1}, "image/png")
	tok, _, _, _ := s.BeginGeneration()

	// Form closed/reset while the call is outstanding.
	s.ResetDraft()

	if s.ApplyGeneration(tok, "late result", "") {
		t.Fatal("a result for a reset form must be discarded")
	}
	d := s.Snapshot().Draft
	if d.Description != "" || d.Generating || d.Err != "" {
		t.Fatalf("reset draft must stay clean, got %+v", d)
	}
}

func TestDraftKeepsImageAcrossResubmits(t *testing.T) {
	s := NewStore().Get("sid-1")
	s.UpdateDraft("Tea", "85.50", "", "Food & Drink", "data:image/jpeg;base64,yy", []byte{9}, "image/jpeg")
	// Next submit carries no file input.
	s.UpdateDraft("Tea", "85.50", "Smooth and earthy.", "Food & Drink", "", nil, "")
	d := s.Snapshot().Draft
	if d.ImageURL == "" || len(d.ImageData) != 1 {
		t.Fatalf("draft should keep the previous upload, got %+v", d)
	}
}

func TestStoreReturnsSameSessionPerSID(t *testing.T) {
	st := NewStore()
	a := st.Get("sid-a")
	if st.Get("sid-a") != a {
		t.Fatal("same sid must map to the same session")
	}
	if st.Get("sid-b") == a {
		t.Fatal("different sids must not share a session")
	}
}
