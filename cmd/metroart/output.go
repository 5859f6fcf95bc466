package main

import (
	"fmt"
	"io"

	"github.com/handiism/metroart/internal/browse"
	"github.com/handiism/metroart/internal/model"
)

func printDepartments(w io.Writer, departments []model.Department) {
	fmt.Fprintln(w, "Departamentos disponibles:")
	for _, dep := range departments {
		fmt.Fprintf(w, "  %d. %s\n", dep.ID, dep.Name)
	}
}

func printNationalities(w io.Writer, catalog []string, pager browse.Pager) {
	start, _ := pager.Bounds()
	for i, name := range browse.PageOf(catalog, pager) {
		fmt.Fprintf(w, "  %d. %s\n", start+i+1, name)
	}
	fmt.Fprintf(w, "Página %d de %d\n", pager.Index+1, max(1, pager.Count()))
}

func printResults(w io.Writer, title string, result browse.Result, pager browse.Pager) {
	fmt.Fprintln(w, title)
	if len(result.Artworks) == 0 {
		fmt.Fprintln(w, "No se encontraron obras.")
		return
	}

	start, _ := pager.Bounds()
	for i, art := range browse.PageOf(result.Artworks, pager) {
		fmt.Fprintf(w, "  %d. %s\n", start+i+1, art.Title)
		fmt.Fprintf(w, "     ID: %s | Autor: %s\n", art.DisplayID(), art.Artist)
	}
	fmt.Fprintf(w, "Página %d de %d\n", pager.Index+1, pager.Count())

	if remaining := result.Total - result.Attempted; remaining > 0 {
		fmt.Fprintf(w, "Se omitieron %d obras restantes\n", remaining)
	}
}

func printDetail(w io.Writer, d model.ArtworkDetail) {
	image := d.ImageURL
	if !d.HasImage() {
		image = "Sin imagen disponible"
	}

	fmt.Fprintf(w, "Título: %s\n", d.Title)
	fmt.Fprintf(w, "ID: %s\n", d.DisplayID())
	fmt.Fprintf(w, "Autor: %s\n", d.Artist)
	fmt.Fprintf(w, "Nacionalidad: %s\n", d.Nationality)
	fmt.Fprintf(w, "Nacimiento: %s\n", d.BirthYear)
	fmt.Fprintf(w, "Muerte: %s\n", d.DeathYear)
	fmt.Fprintf(w, "Tipo: %s\n", d.Classification)
	fmt.Fprintf(w, "Año de creación: %s\n", d.CreationDate)
	fmt.Fprintf(w, "Imagen: %s\n", image)
}
