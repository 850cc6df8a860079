package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"

	"liyu1981.xyz/smartfloors-service/pkg/common"
	pb "liyu1981.xyz/smartfloors-service/pkg/grpc/smartfloors_service"
	"liyu1981.xyz/smartfloors-service/pkg/stream"
)

var maxBuildings int = 1000
var warmupReadings int = 5
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient pb.SmartFloorsServiceClient
var mqttClient mqtt.Client

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

type floorRef struct {
	buildingID string
	floor      int
}

func main() {
	floors := make([]floorRef, 0, maxBuildings*common.MaxFloor)
	for n := 0; n < maxBuildings; n++ {
		buildingID := uuid.NewString()
		for f := common.MinFloor; f <= common.MaxFloor; f++ {
			floors = append(floors, floorRef{buildingID: buildingID, floor: f})
		}
	}
	fmt.Printf("generated %v floors in %v buildings\n", len(floors), maxBuildings)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = pb.NewSmartFloorsServiceClient(conn)

	fmt.Printf("gRPC client created\n")

	if broker := os.Getenv(common.EnvKeySFMqttBroker); broker != "" {
		mqttClient = mqtt.NewClient(mqtt.NewClientOptions().AddBroker(broker).SetClientID("floors1k-" + uuid.NewString()))
		if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
			log.Fatal("Failed to connect to MQTT broker:", token.Error())
		}
		defer mqttClient.Disconnect(250)
		fmt.Printf("mqtt broker connected\n")
	}

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range floors {
		i := i
		wg.Add(1)
		go func() {
			for n := 0; n < warmupReadings; n++ {
				postReading(floors[i])
			}
			fmt.Printf("\rposted warmup readings for floor %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rposted %v warmup readings for %v floors: used time=%v seconds, throughput=%v action/second\n",
		warmupReadings, len(floors), usedTime.Seconds(), float64(len(floors)*warmupReadings)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range floors {
		i := i
		wg.Add(1)
		go func() {
			doAction(floors[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v floors: used time=%v seconds, throughput=%v action/second\n",
		len(floors), usedTime.Seconds(), float64(len(floors)*3)/usedTime.Seconds(),
	)
}

func rndInt(n int32) int32 {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(n)
}

func flipCoin() bool {
	return rndInt(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func postReading(ref floorRef) {
	now := time.Now().UTC()
	t := rndFloat64(18.0, 32.0, 2)
	h := rndFloat64(20.0, 80.0, 2)
	p := rndFloat64(0.5, 8.0, 2)

	switch {
	case mqttClient != nil && rndInt(3) == 0:
		err := stream.PublishReading(mqttClient, ref.buildingID, ref.floor, stream.ReadingPayload{
			Timestamp:   &now,
			Temperature: &t,
			Humidity:    &h,
			Power:       &p,
		})
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
	case flipCoin():
		payload := map[string]any{
			"building":    ref.buildingID,
			"floor":       ref.floor,
			"timestamp":   now.Format(time.RFC3339),
			"temp_c":      t,
			"humedad_pct": h,
			"energia_kw":  p,
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/sensor-data", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			fmt.Printf("\nresponse status code != 201: %v\n", resp.StatusCode)
		}
	default:
		resp, err := grpcClient.PostReading(context.Background(), &pb.PostReadingRequest{
			Reading: &pb.Reading{
				Timestamp:  timestamppb.New(now),
				Building:   ref.buildingID,
				Floor:      int32(ref.floor),
				TempC:      t,
				HumedadPct: h,
				EnergiaKw:  p,
			},
		})
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if !resp.Status.Success {
			fmt.Printf("\nresponse success = false: %v\n", resp.Status.Message)
		}
	}
}

func doAction(ref floorRef) {
	actions := []func(){
		genPostReadingAction(ref),
		genPredictAction(ref),
		genGetAlertsAction(ref),
	}
	actionNames := []string{
		"PostReading",
		"Predict",
		"GetAlerts",
	}
	rndMu.Lock()
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	rndMu.Unlock()
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for floor %v", actionNames[index], common.FloorKey(ref.buildingID, ref.floor))
		time.Sleep(time.Duration(100+rndInt(1000)) * time.Millisecond)
	}
}

func genPostReadingAction(ref floorRef) func() {
	return func() {
		postReading(ref)
	}
}

func genPredictAction(ref floorRef) func() {
	variables := []string{"temp_c", "humedad_pct", "energia_kw"}
	return func() {
		variable := variables[rndInt(int32(len(variables)))]

		if flipCoin() {
			resp, err := http.Get(fmt.Sprintf("http://%s/predict/%d/%s?building=%s", httpHostPort, ref.floor, variable, ref.buildingID))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
			}
		} else {
			resp, err := grpcClient.Predict(context.Background(), &pb.PredictRequest{
				Building: ref.buildingID,
				Floor:    int32(ref.floor),
				Variable: variable,
			})
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			if !resp.Status.Success {
				fmt.Printf("\nresponse success = false: %v\n", resp.Status.Message)
			}
		}
	}
}

func genGetAlertsAction(ref floorRef) func() {
	return func() {
		if flipCoin() {
			resp, err := http.Get(fmt.Sprintf("http://%s/alerts?building=%s&floor=%d", httpHostPort, ref.buildingID, ref.floor))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
			}
		} else {
			resp, err := grpcClient.GetAlerts(context.Background(), &pb.GetAlertsRequest{
				Building:   ref.buildingID,
				Floor:      int32(ref.floor),
				ActiveOnly: true,
			})
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			if !resp.Status.Success {
				fmt.Printf("\nresponse success = false: %v\n", resp.Status.Message)
			}
		}
	}
}
