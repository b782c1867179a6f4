package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestPlan_SetChairCount_Clamp(t *testing.T) {
	tt := []struct {
		name string
		n    int
		want int
	}{
		{name: "below minimum", n: -5, want: MinChairs},
		{name: "minimum", n: 2, want: 2},
		{name: "plain", n: 11, want: 11},
		{name: "maximum", n: 20, want: 20},
		{name: "above maximum", n: 999, want: MaxChairs},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			plan, table := Plan{}.AddTable(TableShapeRound, Point{})
			plan = plan.SetChairCount(table.ID, tc.n)
			got, ok := plan.TableByID(table.ID)
			if !ok {
				t.Fatalf("table disappeared")
			}
			if len(got.Chairs) != tc.want {
				t.Fatalf("chair count = %d, want %d", len(got.Chairs), tc.want)
			}
		})
	}
}

func TestPlan_SetChairCount_ShrinkReleasesGuests(t *testing.T) {
	plan := Plan{}
	var guests []Guest
	for _, name := range []string{"Ada", "Grace", "Edsger", "Barbara"} {
		var g Guest
		plan, g = plan.AddGuest(name, GenderFemale, "")
		guests = append(guests, g)
	}
	plan, table := plan.AddTable(TableShapeRound, Point{})
	// seat the four guests on chairs 0..3 of eight
	for i, g := range guests {
		plan = plan.AssignGuest(table.ID, plan.Tables[0].Chairs[i].ID, g.ID)
	}

	plan = plan.SetChairCount(table.ID, 3)

	got, _ := plan.TableByID(table.ID)
	if len(got.Chairs) != 3 {
		t.Fatalf("chair count = %d, want 3", len(got.Chairs))
	}
	for i, g := range guests[:3] {
		if got.Chairs[i].GuestID != g.ID {
			t.Errorf("chair %d lost its guest: got %s, want %s", i, got.Chairs[i].GuestID, g.ID)
		}
	}
	seated := map[uuid.UUID]bool{}
	for _, c := range got.Chairs {
		seated[c.GuestID] = true
	}
	if seated[guests[3].ID] {
		t.Fatalf("guest on truncated chair is still seated")
	}
	if _, ok := plan.GuestByID(guests[3].ID); !ok {
		t.Fatalf("truncation must not delete the guest entity")
	}
}

func TestPlan_ReassignMovesGuest(t *testing.T) {
	plan := Plan{}
	plan, guest := plan.AddGuest("Alan", GenderMale, "")
	plan, table := plan.AddTable(TableShapeRound, Point{})
	c1 := plan.Tables[0].Chairs[1].ID
	c2 := plan.Tables[0].Chairs[2].ID

	plan = plan.AssignGuest(table.ID, c1, guest.ID)
	// move: clear everywhere first, then set the new chair
	plan = plan.UnassignGuestEverywhere(guest.ID)
	plan = plan.AssignGuest(table.ID, c2, guest.ID)

	got, _ := plan.TableByID(table.ID)
	var seats int
	for _, c := range got.Chairs {
		if c.GuestID == guest.ID {
			seats++
			if c.ID != c2 {
				t.Fatalf("guest sits on %s, want %s", c.ID, c2)
			}
		}
	}
	if seats != 1 {
		t.Fatalf("guest occupies %d chairs, want exactly 1", seats)
	}
}

func TestPlan_RemoveGuestClearsChairs(t *testing.T) {
	plan := Plan{}
	plan, guest := plan.AddGuest("Linus", GenderMale, "")
	plan, t1 := plan.AddTable(TableShapeRound, Point{})
	plan, t2 := plan.AddTable(TableShapeRect, Point{X: 300})
	plan = plan.AssignGuest(t1.ID, plan.Tables[0].Chairs[0].ID, guest.ID)
	plan = plan.AssignGuest(t2.ID, plan.Tables[1].Chairs[5].ID, guest.ID)

	plan = plan.RemoveGuest(guest.ID)

	if _, ok := plan.GuestByID(guest.ID); ok {
		t.Fatalf("guest still exists after removal")
	}
	for _, table := range plan.Tables {
		for _, c := range table.Chairs {
			if c.GuestID == guest.ID {
				t.Fatalf("chair %s still references removed guest", c.ID)
			}
		}
	}
}

func TestPlan_AddTable_Numbering(t *testing.T) {
	plan := Plan{}
	plan, first := plan.AddTable(TableShapeRound, Point{})
	plan, second := plan.AddTable(TableShapeRect, Point{X: 200})
	if first.Number != 1 || second.Number != 2 {
		t.Fatalf("numbers = %d, %d, want 1, 2", first.Number, second.Number)
	}
	if len(first.Chairs) != 8 {
		t.Errorf("round default chairs = %d, want 8", len(first.Chairs))
	}
	if len(second.Chairs) != 12 {
		t.Errorf("rect default chairs = %d, want 12", len(second.Chairs))
	}
	if first.Badge != BadgeClassic || second.Badge != BadgeModern {
		t.Errorf("badges = %s, %s, want %s, %s", first.Badge, second.Badge, BadgeClassic, BadgeModern)
	}

	// deleting the highest number frees it for reuse
	plan = plan.DeleteTable(second.ID)
	plan, third := plan.AddTable(TableShapeRound, Point{})
	if third.Number != 2 {
		t.Fatalf("number after delete = %d, want 2", third.Number)
	}
}

func TestPlan_DuplicateTable(t *testing.T) {
	plan := Plan{}
	plan, guest := plan.AddGuest("Dennis", GenderMale, "")
	plan, src := plan.AddTable(TableShapeRect, Point{X: 100, Y: 100})
	plan = plan.SetChairCount(src.ID, 6)
	plan = plan.AssignGuest(src.ID, plan.Tables[0].Chairs[2].ID, guest.ID)
	srcSnap, _ := plan.TableByID(src.ID)

	plan, dup, ok := plan.DuplicateTable(src.ID, Point{X: 140, Y: 140})
	if !ok {
		t.Fatalf("duplicate reported not found")
	}
	if dup.ID == src.ID {
		t.Fatalf("duplicate shares the source identity")
	}
	if dup.Number != 2 {
		t.Errorf("duplicate number = %d, want 2", dup.Number)
	}
	if dup.X != 140 || dup.Y != 140 {
		t.Errorf("duplicate at (%v,%v), want (140,140)", dup.X, dup.Y)
	}
	if len(dup.Chairs) != len(srcSnap.Chairs) {
		t.Fatalf("duplicate chair count = %d, want %d", len(dup.Chairs), len(srcSnap.Chairs))
	}
	for i := range dup.Chairs {
		if dup.Chairs[i].ID == srcSnap.Chairs[i].ID {
			t.Errorf("chair %d kept the source chair identity", i)
		}
		if dup.Chairs[i].GuestID != srcSnap.Chairs[i].GuestID {
			t.Errorf("chair %d assignment = %s, want %s", i, dup.Chairs[i].GuestID, srcSnap.Chairs[i].GuestID)
		}
	}

	// the unknown id path must not touch the plan
	before := len(plan.Tables)
	plan, _, ok = plan.DuplicateTable(uuid.MustParse("0eac703a-40f3-4318-ae96-f28e026a23c6"), Point{})
	if ok || len(plan.Tables) != before {
		t.Fatalf("duplicating an unknown table changed the plan")
	}
}

func TestPlan_MutatorsDoNotAliasInput(t *testing.T) {
	plan := Plan{}
	plan, guest := plan.AddGuest("Ken", GenderMale, "")
	plan, table := plan.AddTable(TableShapeRound, Point{})
	chair := plan.Tables[0].Chairs[0].ID

	next := plan.AssignGuest(table.ID, chair, guest.ID)
	if plan.Tables[0].Chairs[0].GuestID != uuid.Nil {
		t.Fatalf("AssignGuest mutated its input")
	}
	if next.Tables[0].Chairs[0].GuestID != guest.ID {
		t.Fatalf("AssignGuest result missing the assignment")
	}

	shrunk := next.SetChairCount(table.ID, 2)
	if len(next.Tables[0].Chairs) != 8 {
		t.Fatalf("SetChairCount mutated its input")
	}
	if len(shrunk.Tables[0].Chairs) != 2 {
		t.Fatalf("SetChairCount result has %d chairs, want 2", len(shrunk.Tables[0].Chairs))
	}

	// writes into the clone must not show through shared backing arrays
	shrunk.Guests[0].Name = "changed"
	if next.Guests[0].Name != "Ken" {
		t.Fatalf("clone shares guest backing storage with its source")
	}
}

func TestVersion_Projections(t *testing.T) {
	plan := Plan{}
	plan, _ = plan.AddGuest("Rob", GenderMale, "")
	plan, _ = plan.AddTable(TableShapeRound, Point{})

	v := Version{
		ID:     uuid.MustParse("951812f2-9bbd-481b-a798-6653c355b9c0"),
		Name:   "rehearsal dinner",
		Guests: plan.Guests,
		Tables: plan.Tables,
	}
	info := v.Info()
	if info.ID != v.ID || info.Name != v.Name {
		t.Fatalf("info = %+v, want id %s name %q", info, v.ID, v.Name)
	}
	got := v.Plan()
	if len(got.Guests) != 1 || len(got.Tables) != 1 {
		t.Fatalf("plan projection lost payload: %d guests, %d tables", len(got.Guests), len(got.Tables))
	}
}
