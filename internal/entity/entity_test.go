package entity

import "testing"

func TestNewCopiesStatTable(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		symbol rune
		hp     int
		attack int
	}{
		{KindPlayer, "player", '@', 10, 1},
		{KindRat, "rat", 'r', 1, 1},
		{KindGiantRat, "giant rat", 'R', 2, 1},
		{KindGoblin, "goblin", 'g', 1, 2},
	}

	for _, tt := range tests {
		a := New(tt.kind)
		if a.Name != tt.name || a.Symbol != tt.symbol || a.Hitpoints != tt.hp || a.Attack != tt.attack {
			t.Errorf("New(%v) = {%q %c hp=%d atk=%d}, want {%q %c hp=%d atk=%d}",
				tt.kind, a.Name, a.Symbol, a.Hitpoints, a.Attack,
				tt.name, tt.symbol, tt.hp, tt.attack)
		}
	}
}

func TestNewActorsAreIndependent(t *testing.T) {
	r1 := New(KindRat)
	r2 := New(KindRat)

	r1.TakeDamage(5)

	if r2.Hitpoints != 1 {
		t.Errorf("damaging one rat changed another: hp = %d", r2.Hitpoints)
	}
	if KindRat.Stats().Hitpoints != 1 {
		t.Error("damaging a rat changed the stat table")
	}
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Aaron", 5, 5)

	if p.Name != "Aaron" {
		t.Errorf("Name = %q, want Aaron", p.Name)
	}
	if x, y := p.Position(); x != 5 || y != 5 {
		t.Errorf("Position() = (%d,%d), want (5,5)", x, y)
	}
	if p.Kind.IsMonster() {
		t.Error("player should not be a monster")
	}
}

func TestUnknownKind(t *testing.T) {
	k := Kind(99)
	if k.String() != "unknown" {
		t.Errorf("Kind(99).String() = %q, want unknown", k.String())
	}
	if k.IsMonster() {
		t.Error("unknown kind should not be a monster")
	}
	if New(k).IsAlive() {
		t.Error("unknown kind should start dead")
	}
}

func TestParseKind(t *testing.T) {
	for _, id := range []string{"player", "rat", "giant_rat", "goblin"} {
		k, ok := ParseKind(id)
		if !ok {
			t.Errorf("ParseKind(%q) not found", id)
			continue
		}
		if k.String() != id {
			t.Errorf("ParseKind(%q).String() = %q", id, k.String())
		}
	}
	if _, ok := ParseKind("dragon"); ok {
		t.Error("ParseKind(dragon) should fail")
	}
}

func TestAdjacentTo(t *testing.T) {
	p := NewPlayer("p", 5, 5)

	tests := []struct {
		x, y int
		want bool
	}{
		{5, 6, true},
		{4, 4, true},
		{6, 4, true},
		{5, 5, true},
		{5, 7, false},
		{7, 5, false},
		{3, 3, false},
	}

	for _, tt := range tests {
		m := New(KindRat)
		m.SetPosition(tt.x, tt.y)
		if got := m.AdjacentTo(p); got != tt.want {
			t.Errorf("monster at (%d,%d) AdjacentTo(5,5) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTakeDamage(t *testing.T) {
	g := New(KindGiantRat)

	if got := g.TakeDamage(0); got != 0 || g.Hitpoints != 2 {
		t.Errorf("TakeDamage(0) = %d, hp = %d; want 0, 2", got, g.Hitpoints)
	}
	g.TakeDamage(1)
	if !g.IsAlive() {
		t.Error("giant rat should survive one point of damage")
	}
	g.TakeDamage(3)
	if g.IsAlive() {
		t.Error("giant rat should be dead")
	}
	if g.Hitpoints != -2 {
		t.Errorf("Hitpoints = %d, want -2", g.Hitpoints)
	}
}
