package cashflow

// statement2024 mirrors the row layout ledongthuc/pdf produces for a TFRS
// consolidated cash-flow statement.
const statement2024 = `XYZ HOLDİNG A.Ş.
KONSOLİDE NAKİT AKIŞ TABLOSU
(Tutarlar aksi belirtilmedikçe Bin TL olarak ifade edilmiştir.)
                                                         Cari Dönem
A. İŞLETME FAALİYETLERİNDEN NAKİT AKIŞLARI               29.454.653
Dönem Karı (Zararı)                                      12.345.678
Amortisman ve İtfa Gideri ile İlgili Düzeltmeler          1.234.567
İşletme Sermayesinde Gerçekleşen Değişimler              (2.500.000)
Vergi İadeleri (Ödemeleri)                               (1.750.000)
B. YATIRIM FAALİYETLERİNDEN KAYNAKLANAN NAKİT AKIŞLARI   (8.765.432)
Maddi ve Maddi Olmayan Duran Varlıkların Alımından Kaynaklanan Nakit Çıkışları (9.000.000)
C. FİNANSMAN FAALİYETLERİNDEN NAKİT AKIŞLARI             (3.210.000)
Ödenen Temettüler                                        (1.000.000)
D. YABANCI PARA ÇEVRİM FARKLARININ NAKİT VE NAKİT BENZERLERİ ÜZERİNDEKİ ETKİSİ 1.456.789
DÖNEM BAŞI NAKİT VE NAKİT BENZERLERİ                      5.000.000
DÖNEM SONU NAKİT VE NAKİT BENZERLERİ                     23.936.010
`
