package domain

import "testing"

func TestCanMutate_Owner(t *testing.T) {
	l := &Listing{OwnerID: "u1"}
	if !CanMutate(Actor{ID: "u1", Role: RoleUser}, l) {
		t.Fatalf("owner should be allowed to mutate")
	}
}

func TestCanMutate_NonOwner(t *testing.T) {
	l := &Listing{OwnerID: "u1"}
	if CanMutate(Actor{ID: "u2", Role: RoleUser}, l) {
		t.Fatalf("non-owner should not be allowed to mutate")
	}
}

func TestCanMutate_AdminBypass(t *testing.T) {
	l := &Listing{OwnerID: "u1"}
	if !CanMutate(Actor{ID: "u2", Role: RoleAdmin}, l) {
		t.Fatalf("admin should be allowed to mutate any listing")
	}
}

func TestCanRead_PublicStatusVisibleToAnyone(t *testing.T) {
	l := &Listing{OwnerID: "u1", Status: StatusActive}
	if !CanRead(&Jobs, nil, l) {
		t.Fatalf("anonymous caller should see active listings")
	}
}

func TestCanRead_DraftHiddenFromStrangers(t *testing.T) {
	l := &Listing{OwnerID: "u1", Status: StatusDraft}
	if CanRead(&Jobs, nil, l) {
		t.Fatalf("anonymous caller should not see drafts")
	}
	if CanRead(&Jobs, &Actor{ID: "u2", Role: RoleUser}, l) {
		t.Fatalf("stranger should not see drafts")
	}
}

func TestCanRead_DraftVisibleToOwnerAndAdmin(t *testing.T) {
	l := &Listing{OwnerID: "u1", Status: StatusDraft}
	if !CanRead(&Jobs, &Actor{ID: "u1", Role: RoleUser}, l) {
		t.Fatalf("owner should see their own drafts")
	}
	if !CanRead(&Jobs, &Actor{ID: "u2", Role: RoleAdmin}, l) {
		t.Fatalf("admin should see any draft")
	}
}

func TestProfileByName(t *testing.T) {
	for _, name := range []string{"jobs", "campaigns", "marketplace"} {
		p, err := ProfileByName(name)
		if err != nil {
			t.Fatalf("ProfileByName(%q): %v", name, err)
		}
		if p.Name != name {
			t.Fatalf("expected %q, got %q", name, p.Name)
		}
		if !p.ValidStatus(StatusDraft) {
			t.Fatalf("%s: draft should be a valid status", name)
		}
		if p.IsPublic(StatusDraft) {
			t.Fatalf("%s: draft should not be public", name)
		}
	}

	if _, err := ProfileByName("auctions"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}
