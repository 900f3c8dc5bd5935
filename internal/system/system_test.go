package system

import (
	"errors"
	"testing"
	"time"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/timer"
	"go-space-invaders/internal/utils"
)

type fixture struct {
	settings    *config.Settings
	clock       *timer.ManualClock
	world       *entity.World
	dispatcher  *event.Dispatcher
	rng         *utils.PRNGService
	projectiles *ProjectileSystem
	formation   *FormationSystem
	events      *eventLog
}

type eventLog struct {
	got []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.got = append(l.got, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		settings:   config.Defaults(),
		clock:      timer.NewManualClock(time.Unix(0, 0)),
		world:      entity.NewWorld(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(7),
		events:     &eventLog{},
	}
	f.dispatcher.SubscribeAll(f.events,
		event.BulletFired, event.EnemyDestroyed, event.PlayerHit, event.BonusSpawned,
		event.BonusEscaped, event.WaveStarted, event.WaveCleared, event.GameOver)
	f.projectiles = NewProjectileSystem(f.world, f.dispatcher, f.settings.Screen.Height)
	f.formation = NewFormationSystem(f.world, f.clock, f.rng, f.settings, f.projectiles)
	return f
}

func wave(columns, rows int) defs.WaveDefinition {
	return defs.WaveDefinition{
		Number:        1,
		Columns:       columns,
		Rows:          rows,
		MoveInterval:  time.Second,
		ShootInterval: time.Hour,
	}
}

func TestBulletPoolReuse(t *testing.T) {
	pool := NewBulletPool()
	first := pool.Get(1, 2, -6)
	pool.Recycle(first)
	if pool.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", pool.Size())
	}

	reused := pool.Get(30, 40, 4)
	if reused != first {
		t.Fatal("Get did not reuse the recycled bullet")
	}
	if x, y := reused.Position(); x != 30 || y != 40 {
		t.Errorf("Position() = (%d, %d), want (30, 40)", x, y)
	}
	if reused.Speed() != 4 || reused.Sprite() != defs.EnemyBullet {
		t.Errorf("reused bullet speed=%d sprite=%v, want 4 %v", reused.Speed(), reused.Sprite(), defs.EnemyBullet)
	}
}

func TestProjectileFireAndCull(t *testing.T) {
	f := newFixture(t)
	id := f.projectiles.Fire(100, config.HUDHeight+4, -6)

	b := f.world.Bullets[id]
	if b == nil {
		t.Fatal("Fire did not add a bullet")
	}
	if b.X() != 100-config.BulletWidth/2 {
		t.Errorf("bullet x = %d, want centered at %d", b.X(), 100-config.BulletWidth/2)
	}
	if f.events.count(event.BulletFired) != 1 {
		t.Error("BulletFired not dispatched")
	}

	f.projectiles.Update()
	if _, ok := f.world.Bullets[id]; ok {
		t.Error("bullet above the playfield was not culled")
	}
	if f.projectiles.Pool().Size() != 1 {
		t.Errorf("pool size = %d, want 1", f.projectiles.Pool().Size())
	}
}

func TestProjectileClear(t *testing.T) {
	f := newFixture(t)
	f.projectiles.Fire(50, 200, 4)
	f.projectiles.Fire(60, 200, -6)
	f.projectiles.Clear()
	if len(f.world.Bullets) != 0 || f.projectiles.Pool().Size() != 2 {
		t.Errorf("after Clear: %d bullets, pool %d", len(f.world.Bullets), f.projectiles.Pool().Size())
	}
}

func TestFormationBuild(t *testing.T) {
	f := newFixture(t)
	f.formation.Build(wave(4, 5))

	if len(f.world.Ships) != 20 {
		t.Fatalf("built %d ships, want 20", len(f.world.Ships))
	}
	if f.formation.LiveCount() != 20 || f.formation.Empty() {
		t.Errorf("LiveCount() = %d, Empty() = %v", f.formation.LiveCount(), f.formation.Empty())
	}
	shooters := f.formation.Shooters()
	if len(shooters) != 4 {
		t.Fatalf("Shooters() = %d ships, want 4", len(shooters))
	}
	fs := f.settings.Formation
	for _, id := range shooters {
		ship := f.world.Ships[id]
		if ship.Y() != fs.StartY+4*fs.SpacingY {
			t.Errorf("shooter %d at y=%d, want bottom row", id, ship.Y())
		}
		if ship.Sprite() != defs.EnemyShipA1 {
			t.Errorf("bottom row sprite = %v, want %v", ship.Sprite(), defs.EnemyShipA1)
		}
	}
}

func TestFormationStepsAndDescends(t *testing.T) {
	f := newFixture(t)
	fs := &f.settings.Formation
	// One ship two steps away from the right margin.
	fs.StartX = f.settings.Screen.Width - fs.Margin - config.EnemyShipWidth - 2*fs.XSpeed
	f.formation.Build(wave(1, 1))
	id := f.world.SortedShipIDs()[0]
	ship := f.world.Ships[id]
	x0, y0 := ship.Position()

	f.formation.Update()
	if ship.X() != x0 {
		t.Fatalf("formation moved before its interval")
	}

	steps := []struct{ dx, dy int }{
		{fs.XSpeed, 0},
		{2 * fs.XSpeed, 0},
		{2 * fs.XSpeed, fs.Descent},
		{fs.XSpeed, fs.Descent},
	}
	for i, st := range steps {
		f.clock.Advance(time.Second)
		f.formation.Update()
		if ship.X() != x0+st.dx || ship.Y() != y0+st.dy {
			t.Errorf("step %d: position (%d, %d), want (%d, %d)", i, ship.X(), ship.Y(), x0+st.dx, y0+st.dy)
		}
	}
}

func TestFormationSkipsDestroyedShips(t *testing.T) {
	f := newFixture(t)
	f.formation.Build(wave(1, 2))
	ids := f.world.SortedShipIDs()
	top, bottom := f.world.Ships[ids[0]], f.world.Ships[ids[1]]

	bottom.Destroy()
	if got := f.formation.Shooters(); len(got) != 1 || got[0] != ids[0] {
		t.Errorf("Shooters() = %v, want [%d]", got, ids[0])
	}
	edge, ok := f.formation.BottomEdge()
	if !ok || edge != top.Y()+top.Height() {
		t.Errorf("BottomEdge() = %d, %v; want %d", edge, ok, top.Y()+top.Height())
	}

	bx := bottom.X()
	f.clock.Advance(time.Second)
	f.formation.Update()
	if bottom.X() != bx {
		t.Error("destroyed ship moved with the formation")
	}
	top.Destroy()
	if !f.formation.Empty() {
		t.Error("Empty() = false with every ship destroyed")
	}
}

func TestFormationShoots(t *testing.T) {
	f := newFixture(t)
	w := wave(3, 2)
	w.ShootInterval = 500 * time.Millisecond
	f.settings.Formation.ShootingVariance = 0
	f.formation.Build(w)

	f.clock.Advance(500 * time.Millisecond)
	f.formation.Update()
	if len(f.world.Bullets) != 1 {
		t.Fatalf("formation fired %d bullets, want 1", len(f.world.Bullets))
	}
	for _, b := range f.world.Bullets {
		if b.IsPlayerBullet() {
			t.Error("formation fired an upward bullet")
		}
	}
}

func TestCombatPlayerBulletHitsShip(t *testing.T) {
	f := newFixture(t)
	combat := NewCombatSystem(f.world, f.dispatcher, f.projectiles)
	shipID := f.world.AddShip(entity.NewEnemyShip(f.clock, 100, 100, defs.EnemyShipC1))
	f.projectiles.Fire(112, 105, -6)

	combat.Update()
	ship := f.world.Ships[shipID]
	if !ship.IsDestroyed() {
		t.Fatal("ship was not destroyed")
	}
	if len(f.world.Bullets) != 0 {
		t.Error("bullet survived the hit")
	}
	if f.events.count(event.EnemyDestroyed) != 1 {
		t.Fatalf("EnemyDestroyed dispatched %d times", f.events.count(event.EnemyDestroyed))
	}
	data := f.events.got[len(f.events.got)-1].Data.(event.EnemyDestroyedData)
	if data.Points != 30 || data.ShipID != shipID {
		t.Errorf("EnemyDestroyedData = %+v", data)
	}

	// A second bullet through the explosion scores nothing.
	f.projectiles.Fire(112, 105, -6)
	combat.Update()
	if f.events.count(event.EnemyDestroyed) != 1 {
		t.Error("destroyed ship was hit again")
	}
}

func TestCombatEnemyBulletHitsPlayer(t *testing.T) {
	f := newFixture(t)
	combat := NewCombatSystem(f.world, f.dispatcher, f.projectiles)
	f.world.Player = entity.NewShip(f.clock, 200, 450, 2, time.Second, time.Second)
	f.projectiles.Fire(210, 452, 4)

	combat.Update()
	if !f.world.Player.IsDestroyed() {
		t.Fatal("player was not destroyed")
	}
	if f.events.count(event.PlayerHit) != 1 {
		t.Errorf("PlayerHit dispatched %d times", f.events.count(event.PlayerHit))
	}

	f.projectiles.Fire(210, 452, 4)
	combat.Update()
	if f.events.count(event.PlayerHit) != 1 {
		t.Error("player was hit while already destroyed")
	}
}

func TestCleanupRemovesAfterExplosion(t *testing.T) {
	f := newFixture(t)
	f.formation.Build(wave(2, 1))
	cleanup := NewCleanupSystem(f.world, f.clock, f.formation, 500*time.Millisecond)
	id := f.world.SortedShipIDs()[0]
	f.world.Ships[id].Destroy()

	cleanup.Update()
	if _, ok := f.world.Ships[id]; !ok {
		t.Fatal("ship removed before its explosion was shown")
	}
	f.clock.Advance(499 * time.Millisecond)
	cleanup.Update()
	if _, ok := f.world.Ships[id]; !ok {
		t.Fatal("ship removed too early")
	}
	f.clock.Advance(time.Millisecond)
	cleanup.Update()
	if _, ok := f.world.Ships[id]; ok {
		t.Fatal("ship not removed after its explosion")
	}
	if _, ok := f.world.Lifecycles[id]; ok {
		t.Error("lifecycle left behind")
	}
	if f.formation.LiveCount() != 1 {
		t.Errorf("LiveCount() = %d, want 1", f.formation.LiveCount())
	}
}

func newBonusFixture(t *testing.T) (*fixture, *BonusSystem) {
	f := newFixture(t)
	f.settings.Bonus.Interval = time.Second
	f.settings.Bonus.Variance = 0
	return f, NewBonusSystem(f.world, f.dispatcher, f.clock, f.rng, f.settings)
}

func TestBonusSpawnAndEscape(t *testing.T) {
	f, bonus := newBonusFixture(t)

	bonus.Update()
	if f.world.BonusShip() != nil {
		t.Fatal("bonus ship spawned before its interval")
	}
	f.clock.Advance(time.Second)
	bonus.Update()
	ship := f.world.BonusShip()
	if ship == nil {
		t.Fatal("bonus ship did not spawn")
	}
	if f.events.count(event.BonusSpawned) != 1 {
		t.Error("BonusSpawned not dispatched")
	}

	bonus.Update()
	if ship.X() != config.BonusShipStartX+f.settings.Bonus.Speed {
		t.Errorf("bonus x = %d, want %d", ship.X(), config.BonusShipStartX+f.settings.Bonus.Speed)
	}

	ship.Move(f.settings.Screen.Width+40, 0)
	bonus.Update()
	if f.world.BonusShip() != nil || len(f.world.Ships) != 0 {
		t.Error("escaped bonus ship still in the world")
	}
	if f.events.count(event.BonusEscaped) != 1 {
		t.Error("BonusEscaped not dispatched")
	}
}

func TestBonusCollectedRestartsInterval(t *testing.T) {
	f, bonus := newBonusFixture(t)
	f.clock.Advance(time.Second)
	bonus.Update()
	id := f.world.Bonus
	f.world.Ships[id].Destroy()

	bonus.Update()
	if f.world.Ships[id].X() != config.BonusShipStartX {
		t.Error("destroyed bonus ship kept moving")
	}

	f.world.RemoveShip(id)
	bonus.Update()
	if f.world.BonusShip() != nil {
		t.Fatal("new bonus ship spawned right after collection")
	}
	f.clock.Advance(time.Second)
	bonus.Update()
	if f.world.BonusShip() == nil {
		t.Error("bonus ship did not respawn after the interval")
	}
}

func TestScoreSystem(t *testing.T) {
	d := event.NewDispatcher()
	score := NewScoreSystem(d, 2)

	d.Dispatch(event.Event{Type: event.BulletFired, Data: event.BulletFiredData{ByPlayer: true}})
	d.Dispatch(event.Event{Type: event.BulletFired, Data: event.BulletFiredData{ByPlayer: true}})
	d.Dispatch(event.Event{Type: event.BulletFired, Data: event.BulletFiredData{ByPlayer: false}})
	d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyDestroyedData{Points: 30}})
	d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyDestroyedData{Points: 100, Bonus: true}})
	for i := 0; i < 3; i++ {
		d.Dispatch(event.Event{Type: event.PlayerHit})
	}

	if score.Score != 130 {
		t.Errorf("Score = %d, want 130", score.Score)
	}
	if score.BonusDestroyed != 1 || score.ShipsDestroyed != 2 {
		t.Errorf("destroyed = %d (bonus %d), want 2 (1)", score.ShipsDestroyed, score.BonusDestroyed)
	}
	if score.Lives != 0 || score.LivesLost != 3 {
		t.Errorf("Lives = %d LivesLost = %d, want 0 and 3", score.Lives, score.LivesLost)
	}
	if score.ShotsFired != 2 || score.EnemyShots != 1 {
		t.Errorf("shots = %d/%d, want 2/1", score.ShotsFired, score.EnemyShots)
	}
	if got := score.Accuracy(); got != 1 {
		t.Errorf("Accuracy() = %v, want 1", got)
	}
}

func TestPlayerSystemBordersAndFire(t *testing.T) {
	f := newFixture(t)
	players := NewPlayerSystem(f.world, f.settings, f.projectiles)
	f.world.Player = entity.NewShip(f.clock, 2, 450, 2, 750*time.Millisecond, time.Second)

	players.Update(component.Input{Left: true})
	if f.world.Player.X() != 2 {
		t.Errorf("player moved past the left border to x=%d", f.world.Player.X())
	}
	players.Update(component.Input{Fire: true})
	players.Update(component.Input{Fire: true})
	if len(f.world.Bullets) != 1 {
		t.Fatalf("fired %d bullets, want 1 within the cooldown", len(f.world.Bullets))
	}
	for _, b := range f.world.Bullets {
		if !b.IsPlayerBullet() {
			t.Error("player bullet travels down")
		}
	}
}

type fakeWaves struct {
	started []int
	current int
}

func (w *fakeWaves) StartWave(n int) error {
	w.started = append(w.started, n)
	w.current = n
	return nil
}

func (w *fakeWaves) Current() int { return w.current }

type fakeFormation struct {
	empty  bool
	bottom int
	live   bool
}

func (f *fakeFormation) Empty() bool             { return f.empty }
func (f *fakeFormation) BottomEdge() (int, bool) { return f.bottom, f.live }

func newStateFixture(t *testing.T) (*fixture, *StateSystem, *fakeWaves, *fakeFormation, *ScoreSystem) {
	f := newFixture(t)
	waves := &fakeWaves{current: 1}
	formation := &fakeFormation{bottom: 200, live: true}
	score := NewScoreSystem(f.dispatcher, 3)
	f.world.Player = entity.NewShip(f.clock, 200, 450, 2, time.Second, time.Second)
	return f, NewStateSystem(f.world, f.dispatcher, f.clock, waves, formation, score), waves, formation, score
}

func TestStateWaveCleared(t *testing.T) {
	f, state, waves, formation, _ := newStateFixture(t)

	if err := state.Update(); err != nil || state.Current() != component.PhasePlaying {
		t.Fatalf("Update() = %v, phase %v", err, state.Current())
	}
	formation.empty = true
	state.Update()
	if f.events.count(event.WaveCleared) != 1 {
		t.Fatal("WaveCleared not dispatched")
	}

	formation.empty = false
	state.Update()
	if len(waves.started) != 0 {
		t.Fatal("next wave started before the transition")
	}
	f.clock.Advance(WaveTransition)
	state.Update()
	if len(waves.started) != 1 || waves.started[0] != 2 {
		t.Errorf("started waves = %v, want [2]", waves.started)
	}
	if state.Current() != component.PhasePlaying {
		t.Errorf("phase = %v after transition", state.Current())
	}
}

func TestStateGameOver(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*fakeFormation, *ScoreSystem)
	}{
		{"no lives", func(_ *fakeFormation, s *ScoreSystem) { s.Lives = 0 }},
		{"invaded", func(f *fakeFormation, _ *ScoreSystem) { f.bottom = 450 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, state, _, formation, score := newStateFixture(t)
			tt.mutate(formation, score)
			state.Update()
			if f.events.count(event.GameOver) != 1 {
				t.Errorf("GameOver dispatched %d times", f.events.count(event.GameOver))
			}
		})
	}
}


func TestWaveSystemStartWave(t *testing.T) {
	f, bonus := newBonusFixture(t)
	waves := NewWaveSystem(f.world, f.dispatcher, defs.DefaultWaves, f.formation, f.projectiles, bonus)

	if err := waves.StartWave(1); err != nil {
		t.Fatal(err)
	}
	f.projectiles.Fire(100, 200, 4)
	f.clock.Advance(time.Second)
	bonus.Update()
	if f.world.BonusShip() == nil {
		t.Fatal("bonus ship did not spawn")
	}

	if err := waves.StartWave(2); err != nil {
		t.Fatal(err)
	}
	def, _ := defs.DefaultWaves.For(2)
	if len(f.world.Ships) != def.Columns*def.Rows {
		t.Errorf("world has %d ships, want %d", len(f.world.Ships), def.Columns*def.Rows)
	}
	if len(f.world.Bullets) != 0 || f.world.BonusShip() != nil {
		t.Error("StartWave left bullets or the bonus ship behind")
	}
	if waves.Current() != 2 || f.events.count(event.WaveStarted) != 2 {
		t.Errorf("Current() = %d, WaveStarted x%d", waves.Current(), f.events.count(event.WaveStarted))
	}
}

func TestWaveSystemEmptyTable(t *testing.T) {
	f, bonus := newBonusFixture(t)
	waves := NewWaveSystem(f.world, f.dispatcher, defs.WaveTable{}, f.formation, f.projectiles, bonus)
	if err := waves.StartWave(1); !errors.Is(err, defs.ErrUnknownWave) {
		t.Errorf("StartWave() = %v, want ErrUnknownWave", err)
	}
}
