package game

import (
	"blockworld/internal/config"
	"blockworld/internal/input"
	"blockworld/internal/meshing"
	"blockworld/internal/physics"
	"blockworld/internal/player"
	"blockworld/internal/profiling"
	"blockworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Session ties one world to one player and advances both a tick at a time.
type Session struct {
	World  *world.World
	Player *player.Player
	Input  *input.InputManager

	meshes *meshing.Tracker
	log    *zap.Logger

	Ticks int
}

// Frame is the observable result of one tick.
type Frame struct {
	Mesh     meshing.Mesh
	Rebuilt  bool
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Landing  bool
	Unloaded int

	// Target is the block under the player's crosshair, if any is within reach.
	Target physics.RaycastResult
}

func NewSession(log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}

	gen := newGenerator(config.GetTerrain())
	gameWorld := world.New(
		world.WithLogger(log.Named("world")),
		world.WithGenerator(gen),
		world.WithInitialRadius(config.GetInitialRadius()),
		world.WithRetainRadius(config.GetRetainRadius()),
	)

	gamePlayer := player.New(gameWorld, log.Named("player"))

	// Fix spawn position: never start buried in generated terrain
	spawn := gamePlayer.Spawn
	groundY := gen.HeightAt(world.BlockCoord(spawn.X()), world.BlockCoord(spawn.Z()))
	if float32(groundY) > spawn.Y() {
		spawn[1] = float32(groundY)
		gamePlayer.SetSpawn(spawn)
		log.Info("Raised spawn above terrain", zap.Int("ground_y", groundY))
	}

	return &Session{
		World:  gameWorld,
		Player: gamePlayer,
		Input:  input.NewInputManager(),
		meshes: meshing.NewTracker(log.Named("meshing")),
		log:    log,
	}
}

func newGenerator(t config.Terrain) world.TerrainGenerator {
	if t.Kind == config.TerrainHills {
		return world.NewHillsGenerator(t.Seed, t.Height, t.Amplitude)
	}
	return world.NewFlatGenerator(t.Height)
}

// Tick advances the session by dt seconds.
func (s *Session) Tick(dt float64) Frame {
	defer profiling.Track("session.Tick")()

	if s.Input.JustPressed(input.ActionRespawn) {
		s.Player.Respawn()
	}
	s.Player.UpdatePosition(dt, s.Input)

	mesh, rebuilt := s.meshes.Update(s.World, s.Player.EyePosition())

	s.Ticks++
	unloaded := 0
	if every := config.GetUnloadEveryTicks(); every > 0 && s.Ticks%every == 0 {
		pos := s.Player.Position
		unloaded = s.World.UnloadFarChunks(
			world.BlockCoord(pos.X()), world.BlockCoord(pos.Y()), world.BlockCoord(pos.Z()))
	}

	target := s.Target()

	s.Input.PostUpdate() // Clear "JustPressed" flags

	return Frame{
		Mesh:     mesh,
		Rebuilt:  rebuilt,
		Position: s.Player.Position,
		Velocity: s.Player.Velocity,
		Landing:  s.Player.Landing,
		Unloaded: unloaded,
		Target:   target,
	}
}

// Target casts a ray from the player's eye along the view direction.
func (s *Session) Target() physics.RaycastResult {
	return physics.Raycast(s.Player.EyePosition(), s.Player.FrontVector(),
		physics.MinReachDistance, physics.MaxReachDistance, s.World)
}

// ResolveCollision runs the collision resolver against this session's world.
func (s *Session) ResolveCollision(st physics.State) physics.State {
	return physics.ResolveCollision(s.World, st)
}

// SetBlock edits the world. The tracker picks up the dirty chunk on the next tick.
func (s *Session) SetBlock(x, y, z int, bt world.BlockType) {
	s.World.SetBlock(x, y, z, bt)
}

// Mesh returns the most recently built view mesh.
func (s *Session) Mesh() meshing.Mesh {
	return s.meshes.Mesh()
}
