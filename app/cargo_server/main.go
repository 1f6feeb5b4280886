package main

func main() {
	app := App{}
	app.Run()
}
