// Cradle is a console demo for the physics core: a ball launched over a
// static ground slab, stepped at a fixed rate, with collider overlap
// reported as the ball passes through the slab's volume.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	lambda "github.com/project-lambda/lambda"
	"github.com/project-lambda/lambda/actor"
	"github.com/project-lambda/lambda/core"
)

func main() {
	dt := flag.Float64("dt", 1.0/60.0, "fixed simulation timestep in seconds")
	steps := flag.Int("steps", 600, "number of fixed steps to simulate")
	printEvery := flag.Int("print-every", 30, "print body state every N steps")
	flag.Parse()

	if err := run(*dt, *steps, *printEvery); err != nil {
		fmt.Fprintln(os.Stderr, "cradle:", err)
		os.Exit(1)
	}
}

func run(dt float64, steps, printEvery int) error {
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", dt)
	}
	if printEvery <= 0 {
		printEvery = 1
	}

	clock, err := core.NewClock(1.0 / dt)
	if err != nil {
		return fmt.Errorf("clock: %w", err)
	}

	world := lambda.NewPhysicsWorld()

	ball := actor.NewRigidBody()
	ball.SetMass(1.0)
	ball.SetPosition(mgl64.Vec3{-2, 4, 0})
	ball.SetVelocity(mgl64.Vec3{3, 0, 0})
	ball.SetAngularVelocity(mgl64.Vec3{0, 2, 0})
	world.AddRigidBody(ball)

	// immovable ground slab; participates in collision queries only
	ground := actor.NewRigidBody()
	ground.SetPosition(mgl64.Vec3{0, -1, 0})
	world.AddRigidBody(ground)

	groundBox := actor.NewAABB(mgl64.Vec3{-10, -2, -10}, mgl64.Vec3{10, 0, 10})

	fmt.Printf("simulating %d steps at dt=%.4fs (%.0f Hz)\n", steps, dt, clock.TickRate())

	for step := 1; step <= steps; step++ {
		world.Simulate(dt)
		clock.Advance()

		if step%printEvery != 0 {
			continue
		}

		pos := ball.Position()
		vel := ball.Velocity()
		ballSphere := actor.NewSphere(pos, 0.5)

		touching := ""
		if ballSphere.Intersects(groundBox) {
			touching = "  [touching ground]"
		}

		fmt.Printf("t=%6.2fs  pos=(%7.3f, %7.3f, %7.3f)  vel=(%7.3f, %7.3f, %7.3f)%s\n",
			world.GetSimulationTime(),
			pos.X(), pos.Y(), pos.Z(),
			vel.X(), vel.Y(), vel.Z(),
			touching)
	}

	fmt.Printf("done: simulated %.2fs in %d ticks\n", world.GetSimulationTime(), clock.TickCount())
	return nil
}
