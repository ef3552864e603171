/*
Package surfaces renders parametric surfaces whose shape is computed on the
GPU by tessellation shaders and switched at run time through shader
subroutines.

# Overview

A demo is a DemoConfig: a set of shader stages, a geometry source, a camera
and an optional surface selector. The App assembles the program, supplies
patches, and then every frame advances the clock, rotates the model and
rebinds subroutines only when the selected surface changes.

GPU access goes through the Device interface so that everything in this
package can be exercised without a context. The opengl backend implements
Device on OpenGL 4.1 core and hosts the App in a GLFW window.

# Quick Start

	cfg, _ := surfaces.LookupDemo("ridged-torus")
	lib, _ := shaders.Default()

	win, _ := opengl.Open(cfg.Host)
	defer win.Close()

	dev := opengl.NewDevice()
	defer dev.Delete()

	err := win.Run(surfaces.NewApp(cfg, dev, lib))

# Surface selection

Elapsed time is wrapped by the selector period and divided into buckets of
BucketSeconds. The bucket number indexes the variant table:

	index = floor((t mod period) / BucketSeconds) mod len(Variants)

A variant names one subroutine per slot. With two slots the surface and its
normal come from separate routines; with one slot the normal is derived in
the shader.

# Geometry

MeshGeometry uploads a (u, v) grid triangulated into patches of three
indices. The grid spans [0, 2π) by default; ClosedSeam extends it to [0, 2π]
so that periodic surfaces close, and every mesh preset sets it.
PatchlessGeometry uploads nothing and draws PatchCount patches whose shape is
computed from gl_PrimitiveID.

# Shaders

Shader sources are addressed by "File.Section" keys, for example
"Torus.TES". See package shaders for the file format.

# Logging

The package logs through log/slog and is silent by default. Call SetLogger to
route its records elsewhere.
*/
package surfaces
