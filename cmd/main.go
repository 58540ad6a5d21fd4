package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"vecmath/debug"
	"vecmath/maths"
)

func main() {
	out := flag.String("out", ".", "输出目录")
	flag.Parse()

	a := maths.New(8, 12, 0)
	b := maths.New(-3, 84, 7)

	dot, err := maths.Dot(a, b)
	if err != nil {
		log.Fatal(err)
	}
	cross, err := maths.Cross(a, b)
	if err != nil {
		log.Fatal(err)
	}
	sum, err := maths.Add(a, b)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("a =", a, "b =", b)
	fmt.Println("a · b =", dot)
	fmt.Println("a × b =", cross)
	fmt.Println("a + b =", sum, "|a + b| =", sum.Magnitude())

	// 维度不匹配
	if err := a.Add(maths.New(1, 2)); err != nil {
		fmt.Println(err)
	}

	c := &debug.Charts{Title: "vecmath"}
	c.Add("a", a)
	c.Add("b", b)
	c.Add("a+b", sum)
	c.Add("a×b", cross)

	if err := writeFile(filepath.Join(*out, "vectors.html"), c.Render); err != nil {
		c.Error(err)
	}
	if err := writeFile(filepath.Join(*out, "vectors.png"), func(w io.Writer) error {
		return c.WritePlot(w, "png")
	}); err != nil {
		c.Error(err)
	}
}

func writeFile(name string, render func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
