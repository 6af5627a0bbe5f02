// Package scaffold generates a new frontend project. It powers the root
// command: it checks prerequisites, runs the Vite generator through the
// configured package manager, installs dependencies, writes the template
// files, removes generator leftovers and patches package.json. Any failure
// after the target directory was found free removes the partial project.
package scaffold
